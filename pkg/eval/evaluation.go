package eval

import (
	"fmt"

	. "github.com/chessapp/chessai/pkg/common"
)

const (
	MateScore = 10000
	DrawScore = 0
)

const (
	mobilityWeight   = 5
	kingDefenderCost = 10
	endgameForce     = 13
)

var pieceValues = [King + 1]int{Empty: 0, Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900, King: 20000}

// force of a side for the endgame test, pawns and king excluded
var pieceForce = [King + 1]int{Knight: 3, Bishop: 3, Rook: 5, Queen: 9}

// Terms is the breakdown of one evaluation from White's point of view.
type Terms struct {
	Material   int    `json:"material"`
	Positional int    `json:"positional"`
	Mobility   int    `json:"mobility"`
	KingSafety int    `json:"king_safety"`
	Endgame    bool   `json:"endgame"`
	Terminal   string `json:"terminal,omitempty"`
}

func (t Terms) Total() int {
	return t.Material + t.Positional + t.Mobility + t.KingSafety
}

func (t Terms) String() string {
	if t.Terminal != "" {
		return t.Terminal
	}
	return fmt.Sprintf("material %v positional %v mobility %v kingsafety %v endgame %v total %v",
		t.Material, t.Positional, t.Mobility, t.KingSafety, t.Endgame, t.Total())
}

// EvaluationService has no state and may be shared between goroutines.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// EvaluateWhite scores the position from White's point of view.
// A mated side to move gets -MateScore for White and +MateScore for Black.
func (e *EvaluationService) EvaluateWhite(p Position, positional bool) int {
	var score, terminal = terminalScore(p)
	if terminal {
		return score
	}
	return e.Trace(p, positional).Total()
}

// Evaluate scores the position for the side to move. Terminal sentinels are
// returned unchanged.
func (e *EvaluationService) Evaluate(p Position, positional bool) int {
	var score, terminal = terminalScore(p)
	if terminal {
		return score
	}
	var total = e.Trace(p, positional).Total()
	if !p.WhiteMove() {
		total = -total
	}
	return total
}

func terminalScore(p Position) (int, bool) {
	if p.IsCheckmate() {
		if p.WhiteMove() {
			return -MateScore, true
		}
		return MateScore, true
	}
	if p.IsStalemate() || p.IsInsufficientMaterial() {
		return DrawScore, true
	}
	return 0, false
}

func (e *EvaluationService) Trace(p Position, positional bool) Terms {
	var t Terms
	switch {
	case p.IsCheckmate():
		t.Terminal = "checkmate"
		return t
	case p.IsStalemate():
		t.Terminal = "stalemate"
		return t
	case p.IsInsufficientMaterial():
		t.Terminal = "insufficient material"
		return t
	}

	t.Material = material(p)
	t.Endgame = IsEndgame(p)
	if positional {
		t.Positional = pieceSquares(p, t.Endgame)
	}

	// only the side to move is credited
	t.Mobility = mobilityWeight * len(p.LegalMoves())
	if !p.WhiteMove() {
		t.Mobility = -t.Mobility
	}

	t.KingSafety = kingSafety(p)
	return t
}

func material(p Position) int {
	var score = 0
	for pt := Pawn; pt <= King; pt++ {
		score += (p.PieceCount(pt, true) - p.PieceCount(pt, false)) * pieceValues[pt]
	}
	return score
}

// IsEndgame is true when both queens are off, or when each side has less
// than 13 points of non-pawn material.
func IsEndgame(p Position) bool {
	if p.PieceCount(Queen, true) == 0 && p.PieceCount(Queen, false) == 0 {
		return true
	}
	return force(p, true) < endgameForce && force(p, false) < endgameForce
}

func force(p Position, side bool) int {
	var result = 0
	for pt := Knight; pt <= Queen; pt++ {
		result += pieceForce[pt] * p.PieceCount(pt, side)
	}
	return result
}

func pieceSquares(p Position, endgame bool) int {
	var score = 0
	for sq := 0; sq < 64; sq++ {
		var pt, side = p.PieceAt(sq)
		if pt == Empty {
			continue
		}
		var relSq = sq
		if !side {
			relSq = FlipSquare(sq)
		}
		var value = pstValue(pt, relSq, endgame)
		if side {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func pstValue(pt, sq int, endgame bool) int {
	switch pt {
	case Pawn:
		return pawnPST[sq]
	case Knight:
		return knightPST[sq]
	case Bishop:
		return bishopPST[sq]
	case Rook:
		return rookPST[sq]
	case Queen:
		return queenPST[sq]
	case King:
		if endgame {
			return kingEndPST[sq]
		}
		return kingMiddlePST[sq]
	}
	return 0
}

func kingSafety(p Position) int {
	var whiteKing, blackKing = p.KingSquare(true), p.KingSquare(false)
	if whiteKing == SquareNone || blackKing == SquareNone {
		return 0
	}
	return kingDefenderCost * (kingDefenders(p, whiteKing, true) - kingDefenders(p, blackKing, false))
}

func kingDefenders(p Position, kingSq int, side bool) int {
	var count = 0
	for _, sq := range KingZone(kingSq) {
		var pt, pieceSide = p.PieceAt(sq)
		if pt != Empty && pieceSide == side {
			count++
		}
	}
	return count
}
