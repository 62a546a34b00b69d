package common

type Move int32

const MoveEmpty = Move(0)

const (
	moveCapture = 1 << 15
	moveCheck   = 1 << 16
)

// NewMove packs a move. The capture and check flags are filled in by the rules
// engine at generation time.
func NewMove(from, to, promotion int, capture, check bool) Move {
	var m = Move(from ^ (to << 6) ^ (promotion << 12))
	if capture {
		m |= moveCapture
	}
	if check {
		m |= moveCheck
	}
	return m
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) Promotion() int {
	return int((m >> 12) & 7)
}

func (m Move) IsCapture() bool {
	return m&moveCapture != 0
}

func (m Move) GivesCheck() bool {
	return m&moveCheck != 0
}

// String returns the move in long algebraic (UCI) notation.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

func ContainsMove(ml []Move, move Move) bool {
	for _, m := range ml {
		if m == move {
			return true
		}
	}
	return false
}
