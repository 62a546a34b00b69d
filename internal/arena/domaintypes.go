package arena

import (
	"github.com/chessapp/chessai/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type Config struct {
	EngineA     engine.Difficulty
	EngineB     engine.Difficulty
	Games       int
	Concurrency int
	// games longer than MaxPlies are adjudicated as draws
	MaxPlies int
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []string
	comment  string
	result   int
}

// Stats are counted from engine A's point of view.
type Stats struct {
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}
