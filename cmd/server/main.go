package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chessapp/chessai/internal/config"
	"github.com/chessapp/chessai/internal/httpapi"
	"github.com/chessapp/chessai/internal/logging"
	"github.com/chessapp/chessai/pkg/engine"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		var logger = logging.New("console", "info")
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	var logger = logging.New(cfg.Logs.Style, cfg.Logs.Level)

	gin.SetMode(gin.ReleaseMode)
	var router, eng = newServer(cfg, logger)

	logger.Info().
		Str("addr", cfg.HTTP.Addr).
		Str("difficulty", eng.Config().Difficulty.String()).
		Msg("server started")
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newServer(cfg *config.Config, logger zerolog.Logger) (*gin.Engine, *engine.Engine) {
	var eng = engine.NewEngine(engine.WithLogger(logger))
	eng.SetDifficulty(cfg.Engine.Difficulty)
	var router = httpapi.NewRouter(logger, httpapi.NewStore(cfg.HTTP.StoreLimit), eng)
	return router, eng
}
