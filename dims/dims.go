// Package dims holds the dimension nodes used to size boards. Dimensions
// are fixed before a game exists, so they evaluate without a context.
package dims

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type Const struct {
	ludeme.Base
	v int
}

func NewConst(v int) *Const {
	return &Const{Base: ludeme.NewBase(ludeme.Traits{}), v: v}
}

func (n *Const) Eval() int { return n.v }

type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpMin
	OpMax
)

type Binary struct {
	ludeme.Base
	op     Op
	a, b   ludeme.DimFunction
	folded ludeme.Cell[int]
}

func newBinary(op Op, a, b ludeme.DimFunction) *Binary {
	return &Binary{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Arithmetic)}, a, b),
		op:   op,
		a:    a,
		b:    b,
	}
}

func Add(a, b ludeme.DimFunction) *Binary { return newBinary(OpAdd, a, b) }
func Sub(a, b ludeme.DimFunction) *Binary { return newBinary(OpSub, a, b) }
func Mul(a, b ludeme.DimFunction) *Binary { return newBinary(OpMul, a, b) }
func Min(a, b ludeme.DimFunction) *Binary { return newBinary(OpMin, a, b) }
func Max(a, b ludeme.DimFunction) *Binary { return newBinary(OpMax, a, b) }

func (n *Binary) Eval() int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval()
}

func (n *Binary) eval() int {
	x, y := n.a.Eval(), n.b.Eval()
	switch n.op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpMin:
		return min(x, y)
	case OpMax:
		return max(x, y)
	}
	return 0
}

func (n *Binary) Preprocess(g *game.Game) {
	ludeme.Fold(g, n, &n.folded, func(*game.Context) int { return n.eval() })
}

// Rectangle builds a grid board from two dimensions.
func Rectangle(rows, cols ludeme.DimFunction) (*board.Topology, error) {
	return board.NewRectangle(rows.Eval(), cols.Eval())
}

// Square builds an n x n grid board.
func Square(n ludeme.DimFunction) (*board.Topology, error) {
	side := n.Eval()
	return board.NewRectangle(side, side)
}
