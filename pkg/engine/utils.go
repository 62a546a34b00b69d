package engine

import (
	. "github.com/chessapp/chessai/pkg/common"
)

// above any evaluation, king material included
const valueInfinity = 1_000_000

func randomMove(r Random, ml []Move) Move {
	return ml[r.Intn(len(ml))]
}

func filterMoves(ml []Move, f func(Move) bool) []Move {
	var result []Move
	for _, m := range ml {
		if f(m) {
			result = append(result, m)
		}
	}
	return result
}

func isTerminal(p Position) bool {
	return p.IsCheckmate() || p.IsStalemate() || p.IsInsufficientMaterial()
}
