package engine

import (
	"sync"

	"lukechampine.com/frand"
)

// Random is satisfied by *frand.RNG.
type Random interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// frand package functions draw from a goroutine-safe pool.
type globalRandom struct{}

func (globalRandom) Float64() float64 {
	return frand.Float64()
}

func (globalRandom) Intn(n int) int {
	return frand.Intn(n)
}

func (globalRandom) Shuffle(n int, swap func(i, j int)) {
	frand.Shuffle(n, swap)
}

type lockedRandom struct {
	mu     sync.Mutex
	random Random
}

func (r *lockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

func (r *lockedRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

func (r *lockedRandom) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
