package board

import (
	"fmt"
	"strings"
	"unicode"
)

// Mirror returns a new board with the ranks flipped, the colours swapped and
// the other side to move.
func (b *Board) Mirror() *Board {
	var fen, err = MirrorFEN(b.FEN())
	if err != nil {
		panic(err)
	}
	var result, err2 = NewBoardFromFEN(fen)
	if err2 != nil {
		panic(err2)
	}
	return result
}

func MirrorFEN(fen string) (string, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return "", fmt.Errorf("parse fen failed %v", fen)
	}

	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return "", fmt.Errorf("parse fen failed %v", fen)
	}
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	tokens[0] = swapCase(strings.Join(ranks, "/"))

	if tokens[1] == "w" {
		tokens[1] = "b"
	} else {
		tokens[1] = "w"
	}

	if tokens[2] != "-" {
		var swapped = swapCase(tokens[2])
		var sb strings.Builder
		for _, ch := range "KQkq" {
			if strings.ContainsRune(swapped, ch) {
				sb.WriteRune(ch)
			}
		}
		tokens[2] = sb.String()
	}

	if ep := tokens[3]; ep != "-" && len(ep) == 2 {
		tokens[3] = string(ep[0]) + string('1'+'8'-rune(ep[1]))
	}

	return strings.Join(tokens, " "), nil
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}
