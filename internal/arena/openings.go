package arena

import (
	"context"
	"strings"

	"github.com/chessapp/chessai/pkg/board"
)

// openings in UCI notation, each is played twice with colours reversed
var openings = []string{
	"e2e4 e7e5 g1f3 b8c6",
	"d2d4 d7d5 c2c4 e7e6",
	"e2e4 c7c5 g1f3 d7d6",
	"c2c4 e7e5 b1c3 g8f6",
	"e2e4 e7e6 d2d4 d7d5",
	"d2d4 g8f6 c2c4 g7g6",
	"e2e4 c7c6 d2d4 d7d5",
	"g1f3 d7d5 g2g3 c8g4",
}

func loadOpenings(
	ctx context.Context,
	games int,
	gameInfos chan<- gameInfo,
) error {
	for i := 0; i < games; i++ {
		var fen, err = parseOpening(openings[(i/2)%len(openings)])
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: i%2 == 0, gameNumber: i + 1}:
		}
	}
	return nil
}

func parseOpening(opening string) (string, error) {
	var pos = board.NewBoard()
	for _, lan := range strings.Fields(opening) {
		if _, err := pos.MakeMoveLAN(lan); err != nil {
			return "", err
		}
	}
	return pos.FEN(), nil
}
