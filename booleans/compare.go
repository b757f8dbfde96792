package booleans

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type Op uint8

const (
	OpEq Op = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (o Op) String() string {
	return [...]string{"=", "!=", "<", "<=", ">", ">="}[o]
}

// Compare compares two integer expressions.
type Compare struct {
	ludeme.Base
	op     Op
	a, b   ludeme.IntFunction
	folded ludeme.Cell[bool]
}

func NewCompare(op Op, a, b ludeme.IntFunction) *Compare {
	return &Compare{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Comparison)}, a, b),
		op:   op,
		a:    a,
		b:    b,
	}
}

func Eq(a, b ludeme.IntFunction) *Compare { return NewCompare(OpEq, a, b) }
func Ne(a, b ludeme.IntFunction) *Compare { return NewCompare(OpNe, a, b) }
func Lt(a, b ludeme.IntFunction) *Compare { return NewCompare(OpLt, a, b) }
func Le(a, b ludeme.IntFunction) *Compare { return NewCompare(OpLe, a, b) }
func Gt(a, b ludeme.IntFunction) *Compare { return NewCompare(OpGt, a, b) }
func Ge(a, b ludeme.IntFunction) *Compare { return NewCompare(OpGe, a, b) }

func (n *Compare) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Compare) eval(c *game.Context) bool {
	x, y := n.a.Eval(c), n.b.Eval(c)
	switch n.op {
	case OpEq:
		return x == y
	case OpNe:
		return x != y
	case OpLt:
		return x < y
	case OpLe:
		return x <= y
	case OpGt:
		return x > y
	case OpGe:
		return x >= y
	}
	return false
}

func (n *Compare) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }
