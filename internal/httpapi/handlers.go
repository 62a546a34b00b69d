package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chessapp/chessai/internal/game"
	"github.com/chessapp/chessai/pkg/board"
	"github.com/chessapp/chessai/pkg/common"
	"github.com/chessapp/chessai/pkg/engine"
	"github.com/chessapp/chessai/pkg/eval"
)

type createGameRequest struct {
	FEN         string `json:"fen"`
	Difficulty  string `json:"difficulty"`
	WhitePlayer string `json:"white_player"`
	BlackPlayer string `json:"black_player"`
}

type moveRequest struct {
	Move string `json:"move" binding:"required"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

type bestMoveRequest struct {
	FEN        string `json:"fen" binding:"required"`
	Difficulty string `json:"difficulty"`
}

type gameResponse struct {
	ID         string     `json:"id"`
	EngineMove string     `json:"engine_move,omitempty"`
	State      game.State `json:"state"`
}

type bestMoveResponse struct {
	Move     string     `json:"move,omitempty"`
	Score    int        `json:"score"`
	Depth    int        `json:"depth"`
	Nodes    int64      `json:"nodes"`
	Result   string     `json:"result,omitempty"`
	Analysis eval.Terms `json:"analysis"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "games": h.store.Len()})
}

func (h *handlers) createGame(c *gin.Context) {
	var req createGameRequest
	// an empty body starts a default game
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	g, err := game.New(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Difficulty != "" {
		g.SetDifficulty(req.Difficulty)
	}
	g.SetPlayers(req.WhitePlayer, req.BlackPlayer)
	id, err := h.store.Add(g)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.log.Info().Str("id", id).Str("difficulty", g.Difficulty().String()).Msg("game created")
	c.JSON(http.StatusCreated, gameResponse{ID: id, State: g.State()})
}

func (h *handlers) getGame(c *gin.Context) {
	var id = c.Param("id")
	var resp = gameResponse{ID: id}
	err := h.store.Do(id, func(g *game.Game) error {
		resp.State = g.State()
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) deleteGame(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// makeMove plays the human move and lets the engine answer.
func (h *handlers) makeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var id = c.Param("id")
	var resp = gameResponse{ID: id}
	err := h.store.Do(id, func(g *game.Game) error {
		if err := g.MakeMove(req.Move); err != nil {
			return err
		}
		if !g.IsOver() {
			move, err := g.EngineMove(h.engine)
			if err != nil {
				return err
			}
			resp.EngineMove = move
		}
		resp.State = g.State()
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) engineMove(c *gin.Context) {
	var id = c.Param("id")
	var resp = gameResponse{ID: id}
	err := h.store.Do(id, func(g *game.Game) error {
		move, err := g.EngineMove(h.engine)
		if err != nil {
			return err
		}
		resp.EngineMove = move
		resp.State = g.State()
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) setDifficulty(c *gin.Context) {
	var req difficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var id = c.Param("id")
	var resp = gameResponse{ID: id}
	err := h.store.Do(id, func(g *game.Game) error {
		g.SetDifficulty(req.Difficulty)
		resp.State = g.State()
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bestMove searches a single position without creating a game.
func (h *handlers) bestMove(c *gin.Context) {
	var req bestMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := board.NewBoardFromFEN(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var config = h.engine.Config()
	if req.Difficulty != "" {
		var d, _ = engine.ParseDifficulty(req.Difficulty)
		config = engine.ConfigFor(d)
	}
	var si = h.engine.Search(p, config)
	var resp = bestMoveResponse{
		Score:    si.Score,
		Depth:    si.Depth,
		Nodes:    si.Nodes,
		Result:   p.Status(),
		Analysis: h.evaluator.Trace(p, config.Positional),
	}
	if si.Move != common.MoveEmpty {
		resp.Move = si.Move.String()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) writeError(c *gin.Context, err error) {
	var status = http.StatusInternalServerError
	switch {
	case errors.Is(err, errGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrIllegalMove):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, errStoreFull):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
