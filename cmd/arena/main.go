package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/chessapp/chessai/internal/arena"
	"github.com/chessapp/chessai/internal/logging"
	"github.com/chessapp/chessai/pkg/engine"
)

type Config struct {
	EngineA     string
	EngineB     string
	Games       int
	Concurrency int
	MaxPlies    int
}

var config Config

func main() {
	flag.StringVar(&config.EngineA, "a", "hard", "difficulty of engine A")
	flag.StringVar(&config.EngineB, "b", "medium", "difficulty of engine B")
	flag.IntVar(&config.Games, "games", 16, "Number of games")
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "Number of threads")
	flag.IntVar(&config.MaxPlies, "maxplies", 200, "Adjudicate a draw after this many plies")
	flag.Parse()

	var logger = logging.New("console", "info")

	var engineA, okA = engine.ParseDifficulty(config.EngineA)
	var engineB, okB = engine.ParseDifficulty(config.EngineB)
	if !okA || !okB {
		logger.Warn().Str("a", config.EngineA).Str("b", config.EngineB).Msg("unknown difficulty, using medium")
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var stats, err = arena.Run(ctx, arena.Config{
		EngineA:     engineA,
		EngineB:     engineB,
		Games:       config.Games,
		Concurrency: config.Concurrency,
		MaxPlies:    config.MaxPlies,
	}, logger)
	if err != nil {
		logger.Error().Err(err).Msg("arena failed")
		return
	}
	logger.Info().
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("draws", stats.Draws).
		Float64("winningFraction", stats.WinningFraction).
		Msg("arena finished")
}
