package board

import (
	. "github.com/chessapp/chessai/pkg/common"
)

var (
	knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	rookDeltas   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func isAttacked(squares *[64]coloredPiece, sq int, side bool) bool {
	var file, rank = File(sq), Rank(sq)

	var pawnRank = rank - 1
	if !side {
		pawnRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		if onBoard(file+df, pawnRank) &&
			squares[MakeSquare(file+df, pawnRank)] == (coloredPiece{Pawn, side}) {
			return true
		}
	}

	for _, d := range knightDeltas {
		if onBoard(file+d[0], rank+d[1]) &&
			squares[MakeSquare(file+d[0], rank+d[1])] == (coloredPiece{Knight, side}) {
			return true
		}
	}

	for x := KingAttacks[sq]; x != 0; x &= x - 1 {
		if squares[FirstOne(x)] == (coloredPiece{King, side}) {
			return true
		}
	}

	return slides(squares, file, rank, rookDeltas[:], Rook, side) ||
		slides(squares, file, rank, bishopDeltas[:], Bishop, side)
}

func slides(squares *[64]coloredPiece, file, rank int, deltas [][2]int, slider int, side bool) bool {
	for _, d := range deltas {
		for f, r := file+d[0], rank+d[1]; onBoard(f, r); f, r = f+d[0], r+d[1] {
			var cp = squares[MakeSquare(f, r)]
			if cp.Type == Empty {
				continue
			}
			if cp.Side == side && (cp.Type == slider || cp.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// insufficientMaterial reports positions where neither side can mate:
// no pawns, rooks or queens, and either at most one minor piece in total or
// only bishops that all stand on one square colour.
func insufficientMaterial(squares *[64]coloredPiece) bool {
	var knights, bishops uint64
	for sq := range squares {
		switch squares[sq].Type {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			knights |= SquareMask[sq]
		case Bishop:
			bishops |= SquareMask[sq]
		}
	}
	if !MoreThanOne(knights | bishops) {
		return true
	}
	return knights == 0 &&
		(bishops&DarkSquares == 0 || bishops&^DarkSquares == 0)
}
