package engine

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	. "github.com/chessapp/chessai/pkg/common"
	"github.com/chessapp/chessai/pkg/eval"
)

// Evaluator scores a position from White's point of view.
type Evaluator interface {
	EvaluateWhite(p Position, positional bool) int
}

type SearchInfo struct {
	Move  Move
	Score int // for the side to move at the root
	Depth int
	Nodes int64
	Time  time.Duration
}

// Engine may be shared between goroutines as long as each one searches its
// own Position.
type Engine struct {
	config    atomic.Pointer[Config]
	evaluator Evaluator
	random    Random
	logger    zerolog.Logger
	progress  func(SearchInfo)
}

func NewEngine(options ...Option) *Engine {
	var e = &Engine{
		evaluator: eval.NewEvaluationService(),
		random:    globalRandom{},
		logger:    zerolog.Nop(),
	}
	var config = ConfigFor(Medium)
	e.config.Store(&config)
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Config() Config {
	return *e.config.Load()
}

// SetDifficulty accepts easy, medium or hard in any case. Anything else
// selects medium.
func (e *Engine) SetDifficulty(name string) {
	var d, ok = ParseDifficulty(name)
	if !ok {
		e.logger.Debug().Str("difficulty", name).Msg("unknown difficulty, using medium")
	}
	var config = ConfigFor(d)
	e.config.Store(&config)
}

// BestMove returns MoveEmpty only when there is no legal move.
func (e *Engine) BestMove(p Position) Move {
	return e.Search(p, e.Config()).Move
}

func (e *Engine) Search(p Position, config Config) SearchInfo {
	var start = time.Now()
	var ml = p.LegalMoves()
	if len(ml) == 0 {
		return SearchInfo{Time: time.Since(start)}
	}
	if config.Difficulty == Easy {
		return SearchInfo{
			Move: easyMove(p, ml, e.random),
			Time: time.Since(start),
		}
	}

	e.random.Shuffle(len(ml), func(i, j int) {
		ml[i], ml[j] = ml[j], ml[i]
	})
	var s = &searcher{
		position:   p,
		evaluator:  e.evaluator,
		positional: config.Positional,
		rootWhite:  p.WhiteMove(),
	}
	var result SearchInfo
	for depth := 1; depth <= config.Depth; depth++ {
		var move, score = s.searchRoot(ml, depth)
		if move == MoveEmpty {
			continue
		}
		result = SearchInfo{
			Move:  move,
			Score: score,
			Depth: depth,
			Nodes: s.nodes,
			Time:  time.Since(start),
		}
		e.logger.Debug().
			Int("depth", depth).
			Int("score", score).
			Int64("nodes", s.nodes).
			Str("move", move.String()).
			Msg("iteration complete")
		if e.progress != nil {
			e.progress(result)
		}
	}
	if result.Move == MoveEmpty {
		result.Move = randomMove(e.random, ml)
	}
	result.Nodes = s.nodes
	result.Time = time.Since(start)
	return result
}
