package game

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chessapp/chessai/pkg/board"
	"github.com/chessapp/chessai/pkg/engine"
)

// State is the view of a game sent to clients.
type State struct {
	FEN                  string   `json:"fen"`
	Moves                []string `json:"moves"`
	IsGameOver           bool     `json:"is_game_over"`
	Result               string   `json:"result,omitempty"`
	Winner               string   `json:"winner,omitempty"`
	Turn                 string   `json:"turn"`
	WhitePlayer          string   `json:"white_player"`
	BlackPlayer          string   `json:"black_player"`
	Difficulty           string   `json:"difficulty"`
	Check                bool     `json:"check"`
	Checkmate            bool     `json:"checkmate"`
	Stalemate            bool     `json:"stalemate"`
	InsufficientMaterial bool     `json:"insufficient_material"`
	SeventyFiveMoves     bool     `json:"seventyfive_moves"`
	FivefoldRepetition   bool     `json:"fivefold_repetition"`
}

func (g *Game) State() State {
	return State{
		FEN:                  g.board.FEN(),
		Moves:                g.Moves(),
		IsGameOver:           g.IsOver(),
		Result:               g.result,
		Winner:               g.winnerName(),
		Turn:                 g.turn(),
		WhitePlayer:          g.whitePlayer,
		BlackPlayer:          g.blackPlayer,
		Difficulty:           g.difficulty.String(),
		Check:                g.board.IsCheck(),
		Checkmate:            g.board.IsCheckmate(),
		Stalemate:            g.board.IsStalemate(),
		InsufficientMaterial: g.board.IsInsufficientMaterial(),
		SeventyFiveMoves:     g.result == "seventyfive_moves",
		FivefoldRepetition:   g.result == "fivefold_repetition",
	}
}

type savedGame struct {
	FEN         string         `json:"fen"`
	Moves       []string       `json:"moves"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     *time.Time     `json:"end_time"`
	GameResult  string         `json:"game_result,omitempty"`
	WhitePlayer string         `json:"white_player"`
	BlackPlayer string         `json:"black_player"`
	Difficulty  string         `json:"difficulty"`
	Positions   map[string]int `json:"positions,omitempty"`
}

func (g *Game) Save(w io.Writer) error {
	var data = savedGame{
		FEN:         g.board.FEN(),
		Moves:       g.Moves(),
		StartTime:   g.startTime,
		GameResult:  g.result,
		WhitePlayer: g.whitePlayer,
		BlackPlayer: g.blackPlayer,
		Difficulty:  g.difficulty.String(),
		Positions:   g.positions,
	}
	if !g.endTime.IsZero() {
		var endTime = g.endTime
		data.EndTime = &endTime
	}
	var encoder = json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	return encoder.Encode(&data)
}

func Load(r io.Reader) (*Game, error) {
	var data savedGame
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	var b, err = board.NewBoardFromFEN(data.FEN)
	if err != nil {
		return nil, err
	}
	var difficulty, _ = engine.ParseDifficulty(data.Difficulty)
	var g = &Game{
		board:       b,
		moves:       data.Moves,
		startTime:   data.StartTime,
		result:      data.GameResult,
		whitePlayer: data.WhitePlayer,
		blackPlayer: data.BlackPlayer,
		difficulty:  difficulty,
		positions:   data.Positions,
	}
	if g.positions == nil {
		g.positions = map[string]int{b.PositionKey(): 1}
	}
	if data.EndTime != nil {
		g.endTime = *data.EndTime
	}
	g.checkGameEnd()
	return g, nil
}

func (g *Game) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var f, err = os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadFile(path string) (*Game, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
