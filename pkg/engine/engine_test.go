package engine

import (
	"math"
	"testing"

	"github.com/chessapp/chessai/pkg/board"
	. "github.com/chessapp/chessai/pkg/common"
	"github.com/chessapp/chessai/pkg/eval"
)

// plainMinimax visits the whole tree without pruning.
func plainMinimax(p Position, e Evaluator, depth int, maximizing, rootWhite bool) int {
	if depth == 0 || isTerminal(p) {
		var score = e.EvaluateWhite(p, true)
		if !rootWhite {
			score = -score
		}
		return score
	}
	var best = valueInfinity
	if maximizing {
		best = -valueInfinity
	}
	for _, m := range p.LegalMoves() {
		p.MakeMove(m)
		var score = plainMinimax(p, e, depth-1, !maximizing, rootWhite)
		p.UnmakeMove()
		if maximizing {
			best = Max(best, score)
		} else {
			best = Min(best, score)
		}
	}
	return best
}

func TestAlphaBetaEqualsMinimax(t *testing.T) {
	for seed := byte(1); seed <= 20; seed++ {
		var rng = newTestRNG(seed)
		var root = randomTree(rng, seed%2 == 0, 5)
		var p = newTreePosition(root)
		var evaluator = &treeEvaluator{}
		var ml = p.LegalMoves()
		for depth := 1; depth <= 5; depth++ {
			var s = &searcher{
				position:   p,
				evaluator:  evaluator,
				positional: true,
				rootWhite:  root.white,
			}
			var move, score = s.searchRoot(ml, depth)

			var wantMove = MoveEmpty
			var wantScore = -valueInfinity
			for _, m := range ml {
				p.MakeMove(m)
				var value = plainMinimax(p, evaluator, depth-1, false, root.white)
				p.UnmakeMove()
				if value > wantScore {
					wantScore = value
					wantMove = m
				}
			}
			if move != wantMove || score != wantScore {
				t.Errorf("seed %v depth %v: got %v %v want %v %v",
					seed, depth, move, score, wantMove, wantScore)
			}
			if len(p.stack) != 1 {
				t.Fatal("make/unmake unbalanced")
			}
		}
	}
}

func TestAllRootMovesSearched(t *testing.T) {
	var root = randomTree(newTestRNG(42), true, 4)
	var p = newTreePosition(root)
	var e = NewEngine(
		WithEvaluator(&treeEvaluator{}),
		WithRandom(newTestRNG(7)))
	var config = ConfigFor(Hard)
	var info = e.Search(p, config)
	if !ContainsMove(root.moves, info.Move) {
		t.Fatal(info.Move)
	}
	if info.Depth != config.Depth {
		t.Error(info.Depth)
	}
	for _, m := range root.moves {
		if p.rootVisits[m] != config.Depth {
			t.Errorf("move %v searched %v times", m, p.rootVisits[m])
		}
	}
}

func TestNoLegalMoves(t *testing.T) {
	var root = &treeNode{white: true, mate: true}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		var evaluator = &treeEvaluator{}
		var e = NewEngine(WithEvaluator(evaluator), WithDifficulty(d))
		if m := e.BestMove(newTreePosition(root)); m != MoveEmpty {
			t.Error(d, m)
		}
		if evaluator.calls != 0 {
			t.Error(d, "evaluator called", evaluator.calls)
		}
	}
}

func TestStalemate(t *testing.T) {
	var p, err = board.NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if score := eval.NewEvaluationService().Evaluate(p, true); score != 0 {
		t.Error(score)
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		var e = NewEngine(WithDifficulty(d))
		if m := e.BestMove(p); m != MoveEmpty {
			t.Error(d, m)
		}
	}
}

func TestEasyCaptureFrequency(t *testing.T) {
	tests := []struct {
		name     string
		captures int
		checks   int
		want     float64
	}{
		{"captures", 2, 0, 0.1*0.2 + 0.9*(0.8+0.2*0.2)},
		{"checks", 0, 3, 0.1*0.3 + 0.9*(0.7+0.3*0.3)},
		{"quiet", 0, 0, 0},
	}
	const samples = 10000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var root = flatTree(10, tt.captures, tt.checks)
			var p = newTreePosition(root)
			var evaluator = &treeEvaluator{}
			var e = NewEngine(
				WithEvaluator(evaluator),
				WithRandom(newTestRNG(3)),
				WithDifficulty(Easy))
			var hits = 0
			for i := 0; i < samples; i++ {
				var m = e.BestMove(p)
				if !ContainsMove(root.moves, m) {
					t.Fatal(m)
				}
				if m.IsCapture() || m.GivesCheck() {
					hits++
				}
			}
			var got = float64(hits) / samples
			if math.Abs(got-tt.want) > 0.02 {
				t.Errorf("frequency %.3f want %.3f", got, tt.want)
			}
			if evaluator.calls != 0 {
				t.Error("easy must not evaluate")
			}
		})
	}
}

func TestMateInOne(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8"},
		{"r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", "a8a1"},
	}
	for _, tt := range tests {
		for _, d := range []Difficulty{Medium, Hard} {
			var p, err = board.NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			var e = NewEngine(WithDifficulty(d))
			var info = e.Search(p, e.Config())
			if info.Move.String() != tt.want {
				t.Errorf("%v %v: got %v want %v", tt.fen, d, info.Move, tt.want)
			}
			if info.Score != eval.MateScore {
				t.Errorf("%v %v: score %v", tt.fen, d, info.Score)
			}
			if p.FEN() != tt.fen {
				t.Error("position changed", p.FEN())
			}
		}
	}
}

func TestInitialPosition(t *testing.T) {
	var p = board.NewBoard()
	var ml = p.LegalMoves()
	if len(ml) != 20 {
		t.Fatal(len(ml))
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		var e = NewEngine(WithDifficulty(d))
		var m = e.BestMove(p)
		if !ContainsMove(ml, m) {
			t.Error(d, m)
		}
		if p.FEN() != InitialPositionFen {
			t.Error("position changed", p.FEN())
		}
	}
}

func TestSetDifficulty(t *testing.T) {
	tests := []struct {
		name string
		want Config
	}{
		{"easy", Config{Easy, 1, false, false}},
		{"MEDIUM", Config{Medium, 2, true, true}},
		{" Hard ", Config{Hard, 3, true, true}},
		{"grandmaster", Config{Medium, 2, true, true}},
		{"", Config{Medium, 2, true, true}},
	}
	var e = NewEngine(WithDifficulty(Hard))
	for _, tt := range tests {
		e.SetDifficulty(tt.name)
		if got := e.Config(); got != tt.want {
			t.Errorf("SetDifficulty(%q) = %+v", tt.name, got)
		}
	}
}

func TestDifficultyString(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		var parsed, ok = ParseDifficulty(d.String())
		if !ok || parsed != d {
			t.Error(d, parsed, ok)
		}
	}
}
