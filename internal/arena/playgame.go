package arena

import (
	"fmt"

	"github.com/chessapp/chessai/pkg/board"
	"github.com/chessapp/chessai/pkg/common"
	"github.com/chessapp/chessai/pkg/engine"
)

func playGame(
	engineA, engineB *engine.Engine,
	maxPlies int,
	info gameInfo,
) (gameResult, error) {
	var pos, err = board.NewBoardFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var moves []string
	var keys = make(map[string]int)

	for {
		switch pos.Status() {
		case "checkmate":
			var points = gameResultWhiteWins
			if pos.WhiteMove() {
				points = gameResultBlackWins
			}
			return gameResult{gameInfo: info, moves: moves, comment: "checkmate", result: points}, nil
		case "stalemate":
			return gameResult{gameInfo: info, moves: moves, comment: "stalemate", result: gameResultDraw}, nil
		case "insufficient_material":
			return gameResult{gameInfo: info, moves: moves, comment: "low material", result: gameResultDraw}, nil
		}
		if pos.HalfMoveClock() >= 100 {
			return gameResult{gameInfo: info, moves: moves, comment: "50 moves", result: gameResultDraw}, nil
		}
		var key = pos.PositionKey()
		keys[key] += 1
		if keys[key] == 3 {
			return gameResult{gameInfo: info, moves: moves, comment: "3 fold repetition", result: gameResultDraw}, nil
		}
		if len(moves) >= maxPlies {
			return gameResult{gameInfo: info, moves: moves, comment: "move limit", result: gameResultDraw}, nil
		}

		var eng = engineB
		if pos.WhiteMove() == info.engineAIsWhite {
			eng = engineA
		}
		var bestMove = eng.BestMove(pos)
		if !common.ContainsMove(pos.LegalMoves(), bestMove) {
			return gameResult{}, fmt.Errorf("bad move %v in %v", bestMove, pos.FEN())
		}
		pos.MakeMove(bestMove)
		pos = pos.Clone()
		moves = append(moves, bestMove.String())
	}
}
