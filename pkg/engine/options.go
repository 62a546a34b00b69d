package engine

import (
	"strings"

	"github.com/rs/zerolog"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"easy", "medium", "hard"}

func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return "unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty matches names case-insensitively. Unknown names give Medium
// and ok=false.
func ParseDifficulty(s string) (d Difficulty, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if name == s {
			return Difficulty(i), true
		}
	}
	return Medium, false
}

// Config is immutable once built. Depth is not used by Easy.
type Config struct {
	Difficulty        Difficulty
	Depth             int
	Positional        bool
	OpeningHeuristics bool
}

func ConfigFor(d Difficulty) Config {
	switch d {
	case Easy:
		return Config{Difficulty: Easy, Depth: 1, Positional: false, OpeningHeuristics: false}
	case Hard:
		return Config{Difficulty: Hard, Depth: 3, Positional: true, OpeningHeuristics: true}
	default:
		return Config{Difficulty: Medium, Depth: 2, Positional: true, OpeningHeuristics: true}
	}
}

type Option func(e *Engine)

func WithDifficulty(d Difficulty) Option {
	return func(e *Engine) {
		var config = ConfigFor(d)
		e.config.Store(&config)
	}
}

// WithRandom replaces the default source. The source is locked by the engine,
// so a single *frand.RNG may be shared by concurrent searches.
func WithRandom(r Random) Option {
	return func(e *Engine) {
		e.random = &lockedRandom{random: r}
	}
}

func WithEvaluator(evaluator Evaluator) Option {
	return func(e *Engine) {
		e.evaluator = evaluator
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithProgress is called after every completed iteration of the search.
func WithProgress(progress func(SearchInfo)) Option {
	return func(e *Engine) {
		e.progress = progress
	}
}
