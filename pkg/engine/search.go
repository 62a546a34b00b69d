package engine

import (
	. "github.com/chessapp/chessai/pkg/common"
)

type searcher struct {
	position   Position
	evaluator  Evaluator
	positional bool
	rootWhite  bool
	nodes      int64
}

// searchRoot keeps the first move with the highest score. Alpha starts from
// scratch on every call.
func (s *searcher) searchRoot(ml []Move, depth int) (Move, int) {
	var alpha, beta = -valueInfinity, valueInfinity
	var bestMove = MoveEmpty
	var bestScore = -valueInfinity
	for _, move := range ml {
		var score = s.searchMove(move, depth-1, alpha, beta, false)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		alpha = Max(alpha, bestScore)
	}
	return bestMove, bestScore
}

func (s *searcher) searchMove(move Move, depth, alpha, beta int, maximizing bool) int {
	s.position.MakeMove(move)
	defer s.position.UnmakeMove()
	return s.minimax(depth, alpha, beta, maximizing)
}

// minimax scores are from the point of view of the side to move at the root.
func (s *searcher) minimax(depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if depth == 0 || isTerminal(s.position) {
		return s.evaluate()
	}
	var ml = s.position.LegalMoves()
	if maximizing {
		var best = -valueInfinity
		for _, move := range ml {
			best = Max(best, s.searchMove(move, depth-1, alpha, beta, false))
			alpha = Max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}
	var best = valueInfinity
	for _, move := range ml {
		best = Min(best, s.searchMove(move, depth-1, alpha, beta, true))
		beta = Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// evaluate scores leaves for the root side, whichever side is to move at the
// leaf. Evaluate (side to move) would flip sign with the leaf parity.
func (s *searcher) evaluate() int {
	var score = s.evaluator.EvaluateWhite(s.position, s.positional)
	if !s.rootWhite {
		score = -score
	}
	return score
}
