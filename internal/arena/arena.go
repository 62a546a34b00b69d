package arena

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/chessapp/chessai/pkg/engine"
)

// Run plays cfg.Games games between two difficulty tiers. Every worker owns
// its engines and boards.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) (Stats, error) {
	if cfg.Games <= 0 {
		return Stats{}, errors.New("arena: games must be positive")
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
	if cfg.MaxPlies <= 0 {
		cfg.MaxPlies = 200
	}

	log.Info().
		Str("engineA", cfg.EngineA.String()).
		Str("engineB", cfg.EngineB.String()).
		Int("games", cfg.Games).
		Int("concurrency", cfg.Concurrency).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, cfg.Games, gameInfos)
	})

	g.Go(func() error {
		stats = showResults(gameResults, log)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, cfg, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func playGames(
	ctx context.Context,
	cfg Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = engine.NewEngine(engine.WithDifficulty(cfg.EngineA))
	var engineB = engine.NewEngine(engine.WithDifficulty(cfg.EngineB))
	for gameInfo := range gameInfos {
		var res, err = playGame(engineA, engineB, cfg.MaxPlies, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func showResults(gameResults <-chan gameResult, log zerolog.Logger) Stats {
	var stats Stats
	for gameResult := range gameResults {
		if gameResult.result == gameResultDraw {
			stats.Draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			stats.Wins++
		} else {
			stats.Losses++
		}
		stats = computeStat(stats.Wins, stats.Losses, stats.Draws)
		log.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("result", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("plies", len(gameResult.moves)).
			Msg("game finished")
		log.Info().
			Int("wins", stats.Wins).
			Int("losses", stats.Losses).
			Int("draws", stats.Draws).
			Float64("elo", stats.EloDifference).
			Float64("los", stats.LOS).
			Msg("score")
	}
	return stats
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Stats {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses != 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return Stats{
		Wins:            wins,
		Losses:          losses,
		Draws:           draws,
		WinningFraction: winningFraction,
		EloDifference:   eloDifference,
		LOS:             los,
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return "1-0"
	case gameResultBlackWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
