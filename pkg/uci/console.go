package uci

import (
	"fmt"
	"io"
	"strconv"

	. "github.com/chessapp/chessai/pkg/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const fgBlack = 30

const (
	bgWhite   = 47
	bgHiWhite = 107
)

var chessSymbols = [2][King + 1]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

// PrintPosition draws the board with rank 8 on top.
func PrintPosition(w io.Writer, p Position) {
	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece, side = p.PieceAt(sq)
		fmt.Fprint(w, pieceString(piece, side, IsDarkSquare(sq)))
		if File(sq) == FileH {
			fmt.Fprintln(w)
		}
	}
}

func pieceString(piece int, side, darkSquare bool) string {
	var s = chessSymbols[SideIndex(side)][piece] + " "
	var bgColor = bgHiWhite
	if darkSquare {
		bgColor = bgWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgBlack), strconv.Itoa(bgColor), s, escape, reset)
}
