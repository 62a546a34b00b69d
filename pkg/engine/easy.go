package engine

import (
	. "github.com/chessapp/chessai/pkg/common"
)

const (
	easyRandomRate  = 0.1
	easyCaptureRate = 0.8
	easyCheckRate   = 0.7
)

// easyMove picks a move without search. Each gate draws its own number.
func easyMove(p Position, ml []Move, r Random) Move {
	if r.Float64() < easyRandomRate {
		return randomMove(r, ml)
	}
	var captures = filterMoves(ml, p.IsCapture)
	if len(captures) != 0 && r.Float64() < easyCaptureRate {
		return randomMove(r, captures)
	}
	var checks = filterMoves(ml, p.GivesCheck)
	if len(checks) != 0 && r.Float64() < easyCheckRate {
		return randomMove(r, checks)
	}
	return randomMove(r, ml)
}
