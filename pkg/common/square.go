package common

const FileH = 7

const SquareNone = -1

// Squares are numbered a1=0, b1=1 ... h8=63.
const (
	SquareA1 = 0
	SquareE1 = 4
	SquareG1 = 6
	SquareH1 = 7
	SquareA2 = 8
	SquareE2 = 12
	SquareF3 = 21
	SquareA4 = 24
	SquareE4 = 28
	SquareE7 = 52
	SquareG7 = 54
	SquareA8 = 56
	SquareD8 = 59
	SquareE8 = 60
	SquareH8 = 63
)

func FlipSquare(sq int) int {
	return sq ^ 56
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func IsDarkSquare(sq int) bool {
	return (File(sq) & 1) == (Rank(sq) & 1)
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}
