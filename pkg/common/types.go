package common

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	SideWhite = iota
	SideBlack
)

// Position is the rules engine as seen by evaluation and search.
// MakeMove and UnmakeMove mutate the position in place and are strictly paired.
type Position interface {
	// LegalMoves returns a fresh slice on every call; callers may reorder it.
	LegalMoves() []Move
	MakeMove(m Move)
	UnmakeMove()
	IsCapture(m Move) bool
	GivesCheck(m Move) bool
	IsCheckmate() bool
	IsStalemate() bool
	IsInsufficientMaterial() bool
	WhiteMove() bool
	// PieceAt returns Empty for an empty square.
	PieceAt(sq int) (pieceType int, side bool)
	// KingSquare returns SquareNone if the side has no king.
	KingSquare(side bool) int
	PieceCount(pieceType int, side bool) int
}

func SideIndex(side bool) int {
	if side {
		return SideWhite
	}
	return SideBlack
}
