// Package httpapi serves games against the engine over HTTP.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chessapp/chessai/pkg/engine"
	"github.com/chessapp/chessai/pkg/eval"
)

type handlers struct {
	store     *Store
	engine    *engine.Engine
	evaluator *eval.EvaluationService
	log       zerolog.Logger
}

func NewRouter(log zerolog.Logger, store *Store, eng *engine.Engine) *gin.Engine {
	var h = &handlers{
		store:     store,
		engine:    eng,
		evaluator: eval.NewEvaluationService(),
		log:       log,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", h.health)
	v1 := router.Group("/v1")
	v1.POST("/bestmove", h.bestMove)
	v1.POST("/games", h.createGame)
	v1.GET("/games/:id", h.getGame)
	v1.DELETE("/games/:id", h.deleteGame)
	v1.POST("/games/:id/moves", h.makeMove)
	v1.POST("/games/:id/engine-move", h.engineMove)
	v1.PUT("/games/:id/difficulty", h.setDifficulty)
	return router
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var start = time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
