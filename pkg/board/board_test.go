package board

import (
	"errors"
	"testing"

	. "github.com/chessapp/chessai/pkg/common"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	var b, err = NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestInitialPosition(t *testing.T) {
	var b = NewBoard()
	var ml = b.LegalMoves()
	if len(ml) != 20 {
		t.Fatalf("got %d legal moves, want 20", len(ml))
	}
	for _, m := range ml {
		if b.IsCapture(m) || b.GivesCheck(m) {
			t.Error(m)
		}
	}
	if !b.WhiteMove() {
		t.Error("white must move first")
	}
	if b.KingSquare(true) != SquareE1 || b.KingSquare(false) != SquareE8 {
		t.Error(b.KingSquare(true), b.KingSquare(false))
	}
	if b.PieceCount(Pawn, true) != 8 || b.PieceCount(Queen, false) != 1 {
		t.Error("piece count")
	}
	if pt, side := b.PieceAt(SquareD8); pt != Queen || side {
		t.Error(pt, side)
	}
	if pt, _ := b.PieceAt(SquareE4); pt != Empty {
		t.Error(pt)
	}
	if b.Status() != "" || b.IsCheck() {
		t.Error(b.Status())
	}
}

func TestMakeUnmake(t *testing.T) {
	var b = NewBoard()
	var fen = b.FEN()
	for _, m := range b.LegalMoves() {
		b.MakeMove(m)
		if b.WhiteMove() || b.Ply() != 1 {
			t.Fatal(m, b.FEN())
		}
		for _, reply := range b.LegalMoves() {
			b.MakeMove(reply)
			b.UnmakeMove()
		}
		b.UnmakeMove()
		if b.FEN() != fen {
			t.Fatal(m, b.FEN())
		}
	}
}

func TestLegalMovesReturnsCopy(t *testing.T) {
	var b = NewBoard()
	var ml = b.LegalMoves()
	ml[0], ml[1] = ml[1], ml[0]
	var again = b.LegalMoves()
	if again[0] == ml[0] {
		t.Error("LegalMoves shares its buffer")
	}
}

func TestTerminalPositions(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		status string
		check  bool
	}{
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", "checkmate", true},
		{"back rank", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", "checkmate", true},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "stalemate", false},
		{"bare kings", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", "insufficient_material", false},
		{"king and bishop", "8/8/8/4k3/8/8/8/2B1K3 w - - 0 1", "insufficient_material", false},
		{"same coloured bishops", "8/8/2b5/4k3/8/8/8/4KB2 w - - 0 1", "insufficient_material", false},
		{"two knights", "8/8/3nk3/8/8/3NK3/8/8 w - - 0 1", "", false},
		{"opposite bishops", "8/8/3bk3/8/8/3BK3/8/8 w - - 0 1", "", false},
		{"check", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b = mustBoard(t, tt.fen)
			if got := b.Status(); got != tt.status {
				t.Errorf("Status() = %q, want %q", got, tt.status)
			}
			if got := b.IsCheck(); got != tt.check {
				t.Errorf("IsCheck() = %v, want %v", got, tt.check)
			}
			if tt.status == "checkmate" || tt.status == "stalemate" {
				if len(b.LegalMoves()) != 0 {
					t.Error("terminal position has moves")
				}
			}
		})
	}
}

func TestMoveFlags(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/3p4/4P3/8/8/4K2R w K - 0 1")
	tests := []struct {
		lan     string
		capture bool
		check   bool
	}{
		{"e4d5", true, false},
		{"h1h8", false, true},
		{"e4e5", false, false},
		{"e1g1", false, false},
	}
	for _, tt := range tests {
		var m, err = b.ParseMove(tt.lan)
		if err != nil {
			t.Fatal(err)
		}
		if b.IsCapture(m) != tt.capture || b.GivesCheck(m) != tt.check {
			t.Error(tt.lan, b.IsCapture(m), b.GivesCheck(m))
		}
	}

	var ep = mustBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	var m, err = ep.ParseMove("e5d6")
	if err != nil {
		t.Fatal(err)
	}
	if !ep.IsCapture(m) {
		t.Error("en passant is a capture")
	}
}

func TestPromotion(t *testing.T) {
	var b = mustBoard(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	var m, err = b.MakeMoveLAN("e7e8q")
	if err != nil {
		t.Fatal(err)
	}
	if m.Promotion() != Queen {
		t.Error(m)
	}
	if pt, side := b.PieceAt(SquareE8); pt != Queen || !side {
		t.Error(pt, side)
	}
}

func TestParseMoveIllegal(t *testing.T) {
	var b = NewBoard()
	for _, lan := range []string{"e2e5", "e7e5", "zz", ""} {
		if _, err := b.ParseMove(lan); !errors.Is(err, ErrIllegalMove) {
			t.Error(lan, err)
		}
	}
	if _, err := NewBoardFromFEN("not a fen"); err == nil {
		t.Error("expected fen error")
	}
}

func TestMirror(t *testing.T) {
	var fen, err = MirrorFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	if fen != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1" {
		t.Error(fen)
	}
	var fens = []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"r1bk3r/ppp2p1p/4pp2/4n3/1b2P3/2N5/PPP2PPP/R3KBNR w KQ - 0 9",
	}
	for _, fen := range fens {
		var b = mustBoard(t, fen)
		var m = b.Mirror()
		if m.WhiteMove() == b.WhiteMove() {
			t.Error(fen, "side to move not swapped")
		}
		if len(m.LegalMoves()) != len(b.LegalMoves()) {
			t.Error(fen, m.FEN())
		}
		if back := m.Mirror(); back.FEN() != b.FEN() {
			t.Error(fen, back.FEN())
		}
	}
}

func TestClone(t *testing.T) {
	var b = NewBoard()
	if _, err := b.MakeMoveLAN("e2e4"); err != nil {
		t.Fatal(err)
	}
	var clone = b.Clone()
	if clone.FEN() != b.FEN() || clone.Ply() != 0 {
		t.Fatal(clone.FEN())
	}
	clone.MakeMove(clone.LegalMoves()[0])
	if clone.FEN() == b.FEN() {
		t.Error("clone shares state")
	}
}

func TestHalfMoveClock(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/8/8/8/P7/R3K3 w - - 149 120")
	if b.HalfMoveClock() != 149 {
		t.Fatal(b.HalfMoveClock())
	}
	if _, err := b.MakeMoveLAN("a1b1"); err != nil {
		t.Fatal(err)
	}
	if b.HalfMoveClock() != 150 {
		t.Error(b.FEN())
	}
	if _, err := b.MakeMoveLAN("e8d8"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.MakeMoveLAN("a2a3"); err != nil {
		t.Fatal(err)
	}
	if b.HalfMoveClock() != 0 {
		t.Error(b.FEN())
	}
}

func TestPositionKey(t *testing.T) {
	var b = NewBoard()
	var start = b.PositionKey()
	if start != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -" {
		t.Fatal(start)
	}
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		if _, err := b.MakeMoveLAN(lan); err != nil {
			t.Fatal(lan, err)
		}
	}
	if b.PositionKey() != start {
		t.Error(b.FEN())
	}
	if b.FEN() == InitialPositionFen {
		t.Error("move counters ignored")
	}
}
