package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	. "github.com/chessapp/chessai/pkg/common"
)

var ErrIllegalMove = errors.New("illegal move")

type coloredPiece struct {
	Type int
	Side bool
}

type frame struct {
	position *chess.Position
	// filled on first use
	generated  bool
	moves      []*chess.Move
	legalMoves []Move
	scanned    bool
	squares    [64]coloredPiece
	pieceCount [2][King + 1]int
	kings      [2]int
}

// Board implements common.Position on top of github.com/notnil/chess.
// MakeMove pushes a frame and UnmakeMove pops it, so a Board must not be
// searched by two goroutines at once; use Clone for concurrent callers.
type Board struct {
	stack []frame
}

func NewBoard() *Board {
	var b, err = NewBoardFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return b
}

func NewBoardFromFEN(fen string) (*Board, error) {
	var opt, err = chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("parse fen failed %v: %w", fen, err)
	}
	var game = chess.NewGame(opt)
	return newBoard(game.Position()), nil
}

func newBoard(p *chess.Position) *Board {
	var b = &Board{stack: make([]frame, 1, 16)}
	b.stack[0].position = p
	return b
}

// Clone returns an independent board at the current position without the
// make/unmake history.
func (b *Board) Clone() *Board {
	var clone, err = NewBoardFromFEN(b.FEN())
	if err != nil {
		panic(err)
	}
	return clone
}

func (b *Board) top() *frame {
	return &b.stack[len(b.stack)-1]
}

func (b *Board) FEN() string {
	return b.top().position.String()
}

func (b *Board) String() string {
	return b.FEN()
}

// Ply is the number of moves made on this board since it was created.
func (b *Board) Ply() int {
	return len(b.stack) - 1
}

// HalfMoveClock is the number of plies since the last capture or pawn move.
func (b *Board) HalfMoveClock() int {
	var fields = strings.Fields(b.FEN())
	if len(fields) < 5 {
		return 0
	}
	var n, _ = strconv.Atoi(fields[4])
	return n
}

// PositionKey identifies the position for repetition counting: placement,
// side to move, castling rights and en passant square.
func (b *Board) PositionKey() string {
	var fields = strings.Fields(b.FEN())
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func (f *frame) generate() {
	if f.generated {
		return
	}
	f.generated = true
	f.moves = f.position.ValidMoves()
	f.legalMoves = make([]Move, len(f.moves))
	for i, m := range f.moves {
		f.legalMoves[i] = NewMove(int(m.S1()), int(m.S2()), pieceTypeFromChess(m.Promo()),
			m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant),
			m.HasTag(chess.Check))
	}
}

func (f *frame) scan() {
	if f.scanned {
		return
	}
	f.scanned = true
	f.kings = [2]int{SquareNone, SquareNone}
	var board = f.position.Board()
	for sq := 0; sq < 64; sq++ {
		var piece = board.Piece(chess.Square(sq))
		if piece == chess.NoPiece {
			continue
		}
		var cp = coloredPiece{
			Type: pieceTypeFromChess(piece.Type()),
			Side: piece.Color() == chess.White,
		}
		f.squares[sq] = cp
		f.pieceCount[SideIndex(cp.Side)][cp.Type]++
		if cp.Type == King {
			f.kings[SideIndex(cp.Side)] = sq
		}
	}
}

func (b *Board) LegalMoves() []Move {
	var f = b.top()
	f.generate()
	var result = make([]Move, len(f.legalMoves))
	copy(result, f.legalMoves)
	return result
}

func (b *Board) MakeMove(m Move) {
	var f = b.top()
	f.generate()
	for i := range f.legalMoves {
		if f.legalMoves[i] == m {
			var child = f.position.Update(f.moves[i])
			b.stack = append(b.stack, frame{position: child})
			return
		}
	}
	panic(fmt.Errorf("%w %v in %v", ErrIllegalMove, m, b.FEN()))
}

func (b *Board) UnmakeMove() {
	if len(b.stack) <= 1 {
		panic(errors.New("unmake move without make move"))
	}
	b.stack[len(b.stack)-1] = frame{}
	b.stack = b.stack[:len(b.stack)-1]
}

// ParseMove finds the legal move written in UCI notation, e.g. e2e4 or e7e8q.
func (b *Board) ParseMove(lan string) (Move, error) {
	var f = b.top()
	f.generate()
	for _, m := range f.legalMoves {
		if strings.EqualFold(m.String(), lan) {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w %v", ErrIllegalMove, lan)
}

func (b *Board) MakeMoveLAN(lan string) (Move, error) {
	var m, err = b.ParseMove(lan)
	if err != nil {
		return MoveEmpty, err
	}
	b.MakeMove(m)
	return m, nil
}

func (b *Board) IsCapture(m Move) bool {
	return m.IsCapture()
}

func (b *Board) GivesCheck(m Move) bool {
	return m.GivesCheck()
}

func (b *Board) IsCheckmate() bool {
	return b.top().position.Status() == chess.Checkmate
}

func (b *Board) IsStalemate() bool {
	return b.top().position.Status() == chess.Stalemate
}

func (b *Board) IsInsufficientMaterial() bool {
	var f = b.top()
	f.scan()
	return insufficientMaterial(&f.squares)
}

func (b *Board) IsCheck() bool {
	var f = b.top()
	f.scan()
	var side = b.WhiteMove()
	var kingSq = f.kings[SideIndex(side)]
	return kingSq != SquareNone && isAttacked(&f.squares, kingSq, !side)
}

func (b *Board) WhiteMove() bool {
	return b.top().position.Turn() == chess.White
}

func (b *Board) PieceAt(sq int) (pieceType int, side bool) {
	var f = b.top()
	f.scan()
	var cp = f.squares[sq]
	return cp.Type, cp.Side
}

func (b *Board) KingSquare(side bool) int {
	var f = b.top()
	f.scan()
	return f.kings[SideIndex(side)]
}

func (b *Board) PieceCount(pieceType int, side bool) int {
	var f = b.top()
	f.scan()
	return f.pieceCount[SideIndex(side)][pieceType]
}

// Status names the game-ending condition of the current position, or returns
// an empty string while the game goes on.
func (b *Board) Status() string {
	switch {
	case b.IsCheckmate():
		return "checkmate"
	case b.IsStalemate():
		return "stalemate"
	case b.IsInsufficientMaterial():
		return "insufficient_material"
	}
	return ""
}

func pieceTypeFromChess(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return Empty
}
