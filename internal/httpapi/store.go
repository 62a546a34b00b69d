package httpapi

import (
	"encoding/hex"
	"errors"
	"sync"

	"lukechampine.com/frand"

	"github.com/chessapp/chessai/internal/game"
)

var (
	errGameNotFound = errors.New("game not found")
	errStoreFull    = errors.New("too many games")
)

type storeEntry struct {
	mu   sync.Mutex
	game *game.Game
}

// Store keeps games in memory. Each game is locked while a request works on
// it, different games are served in parallel.
type Store struct {
	mu    sync.Mutex
	games map[string]*storeEntry
	limit int
}

func NewStore(limit int) *Store {
	return &Store{
		games: make(map[string]*storeEntry),
		limit: limit,
	}
}

func (s *Store) Add(g *game.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.games) >= s.limit {
		return "", errStoreFull
	}
	var id = newGameID()
	for s.games[id] != nil {
		id = newGameID()
	}
	s.games[id] = &storeEntry{game: g}
	return id, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// Do runs f with exclusive access to the game.
func (s *Store) Do(id string, f func(g *game.Game) error) error {
	s.mu.Lock()
	var entry = s.games[id]
	s.mu.Unlock()
	if entry == nil {
		return errGameNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return f(entry.game)
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games[id] == nil {
		return errGameNotFound
	}
	delete(s.games, id)
	return nil
}

func newGameID() string {
	return hex.EncodeToString(frand.Bytes(8))
}
