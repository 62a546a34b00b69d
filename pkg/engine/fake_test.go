package engine

import (
	"lukechampine.com/frand"

	. "github.com/chessapp/chessai/pkg/common"
)

// treeNode is a position of a synthetic game tree. Score is the White point of
// view evaluation of the node.
type treeNode struct {
	white    bool
	mate     bool
	score    int
	moves    []Move
	children []*treeNode
}

// treePosition walks a treeNode graph with make/unmake.
type treePosition struct {
	stack      []*treeNode
	rootVisits map[Move]int
}

func newTreePosition(root *treeNode) *treePosition {
	return &treePosition{
		stack:      []*treeNode{root},
		rootVisits: make(map[Move]int),
	}
}

func (p *treePosition) top() *treeNode {
	return p.stack[len(p.stack)-1]
}

func (p *treePosition) LegalMoves() []Move {
	var result = make([]Move, len(p.top().moves))
	copy(result, p.top().moves)
	return result
}

func (p *treePosition) MakeMove(m Move) {
	var node = p.top()
	for i, move := range node.moves {
		if move == m {
			if len(p.stack) == 1 {
				p.rootVisits[m]++
			}
			p.stack = append(p.stack, node.children[i])
			return
		}
	}
	panic("illegal move")
}

func (p *treePosition) UnmakeMove() {
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *treePosition) IsCapture(m Move) bool            { return m.IsCapture() }
func (p *treePosition) GivesCheck(m Move) bool           { return m.GivesCheck() }
func (p *treePosition) IsCheckmate() bool                { return p.top().mate }
func (p *treePosition) IsStalemate() bool                { return !p.top().mate && len(p.top().moves) == 0 }
func (p *treePosition) IsInsufficientMaterial() bool     { return false }
func (p *treePosition) WhiteMove() bool                  { return p.top().white }
func (p *treePosition) PieceAt(sq int) (int, bool)       { return Empty, false }
func (p *treePosition) KingSquare(side bool) int         { return SquareNone }
func (p *treePosition) PieceCount(pt int, side bool) int { return 0 }

type treeEvaluator struct {
	calls int
}

func (e *treeEvaluator) EvaluateWhite(p Position, positional bool) int {
	e.calls++
	return p.(*treePosition).top().score
}

// randomTree builds a tree where every node has between 2 and 5 moves.
func randomTree(rng *frand.RNG, white bool, depth int) *treeNode {
	var node = &treeNode{
		white: white,
		score: rng.Intn(2001) - 1000,
	}
	if depth == 0 {
		return node
	}
	var count = 2 + rng.Intn(4)
	for i := 0; i < count; i++ {
		node.moves = append(node.moves, NewMove(SquareA2+i, SquareA4+i, Empty, false, false))
		node.children = append(node.children, randomTree(rng, !white, depth-1))
	}
	return node
}

// flatTree is a root whose children are leaves.
func flatTree(total, captures, checks int) *treeNode {
	var root = &treeNode{white: true}
	for i := 0; i < total; i++ {
		var capture = i < captures
		var check = i >= captures && i < captures+checks
		root.moves = append(root.moves, NewMove(i, i+8, Empty, capture, check))
		root.children = append(root.children, &treeNode{white: false})
	}
	return root
}

func newTestRNG(seed byte) *frand.RNG {
	var key = make([]byte, 32)
	key[0] = seed
	return frand.NewCustom(key, 1024, 12)
}
