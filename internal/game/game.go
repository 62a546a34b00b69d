package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/chessapp/chessai/pkg/board"
	"github.com/chessapp/chessai/pkg/common"
	"github.com/chessapp/chessai/pkg/engine"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

const (
	defaultWhitePlayer = "Human"
	defaultBlackPlayer = "AI"

	seventyFiveMovesPlies = 150
	fivefoldRepetitions   = 5
)

type Engine interface {
	Search(p common.Position, config engine.Config) engine.SearchInfo
}

// Game is a human against engine session. It is not safe for concurrent use.
type Game struct {
	board       *board.Board
	moves       []string
	positions   map[string]int // occurrences of each position key
	startTime   time.Time
	endTime     time.Time
	result      string
	whitePlayer string
	blackPlayer string
	difficulty  engine.Difficulty
}

// New starts a game from fen, or from the initial position if fen is empty.
func New(fen string) (*Game, error) {
	if fen == "" {
		fen = common.InitialPositionFen
	}
	var b, err = board.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	var g = &Game{
		board:       b,
		positions:   make(map[string]int),
		startTime:   time.Now(),
		whitePlayer: defaultWhitePlayer,
		blackPlayer: defaultBlackPlayer,
		difficulty:  engine.Medium,
	}
	g.positions[b.PositionKey()]++
	g.checkGameEnd()
	return g, nil
}

func (g *Game) FEN() string {
	return g.board.FEN()
}

func (g *Game) Moves() []string {
	return append([]string(nil), g.moves...)
}

func (g *Game) Difficulty() engine.Difficulty {
	return g.difficulty
}

// SetDifficulty falls back to medium for unknown names.
func (g *Game) SetDifficulty(name string) {
	g.difficulty, _ = engine.ParseDifficulty(name)
}

func (g *Game) SetPlayers(white, black string) {
	if white != "" {
		g.whitePlayer = white
	}
	if black != "" {
		g.blackPlayer = black
	}
}

func (g *Game) LegalMoves() []string {
	var ml = g.board.LegalMoves()
	var result = make([]string, len(ml))
	for i, m := range ml {
		result[i] = m.String()
	}
	return result
}

// MakeMove plays a move in UCI notation, e.g. e2e4 or a7a8q.
func (g *Game) MakeMove(lan string) error {
	if g.IsOver() {
		return ErrGameOver
	}
	var m, err = g.board.ParseMove(lan)
	if err != nil {
		return fmt.Errorf("%w %v", ErrIllegalMove, lan)
	}
	g.play(m)
	return nil
}

// EngineMove lets the engine play for the side to move.
func (g *Game) EngineMove(e Engine) (string, error) {
	if g.IsOver() {
		return "", ErrGameOver
	}
	var si = e.Search(g.board, engine.ConfigFor(g.difficulty))
	if si.Move == common.MoveEmpty {
		return "", ErrGameOver
	}
	g.play(si.Move)
	return si.Move.String(), nil
}

func (g *Game) play(m common.Move) {
	g.board.MakeMove(m)
	// history lives in g.moves, the board only needs the current position
	g.board = g.board.Clone()
	g.moves = append(g.moves, m.String())
	g.positions[g.board.PositionKey()]++
	g.checkGameEnd()
}

func (g *Game) checkGameEnd() {
	if g.result != "" {
		return
	}
	g.result = g.board.Status()
	if g.result == "" {
		switch {
		case g.board.HalfMoveClock() >= seventyFiveMovesPlies:
			g.result = "seventyfive_moves"
		case g.positions[g.board.PositionKey()] >= fivefoldRepetitions:
			g.result = "fivefold_repetition"
		}
	}
	if g.result != "" {
		g.endTime = time.Now()
	}
}

func (g *Game) IsOver() bool {
	return g.result != ""
}

// Result is checkmate, stalemate, insufficient_material, seventyfive_moves,
// fivefold_repetition or empty.
func (g *Game) Result() string {
	return g.result
}

// Winner returns white or black after a checkmate and an empty string
// otherwise.
func (g *Game) Winner() string {
	if !g.board.IsCheckmate() {
		return ""
	}
	if g.board.WhiteMove() {
		return "black"
	}
	return "white"
}

func (g *Game) winnerName() string {
	switch g.Winner() {
	case "white":
		return g.whitePlayer
	case "black":
		return g.blackPlayer
	}
	return ""
}

func (g *Game) turn() string {
	if g.board.WhiteMove() {
		return "white"
	}
	return "black"
}
