// Package ints holds the integer-valued rule nodes: constants,
// arithmetic, register and state readers, and the Count and Size
// families.
package ints

import (
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

func (n *Const) Eval(*game.Context) int { return n.v }

// Op is a binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpMin
	OpMax
)

// Binary applies an operator to two integer expressions. Division and
// modulo by zero evaluate to 0; WillCrash reports a divisor that is
// statically zero.
type Binary struct {
	ludeme.Base
	op     Op
	a, b   ludeme.IntFunction
	folded ludeme.Cell[int]
}

func NewBinary(op Op, a, b ludeme.IntFunction) *Binary {
	return &Binary{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Arithmetic)}, a, b),
		op:   op,
		a:    a,
		b:    b,
	}
}

func Add(a, b ludeme.IntFunction) *Binary { return NewBinary(OpAdd, a, b) }
func Sub(a, b ludeme.IntFunction) *Binary { return NewBinary(OpSub, a, b) }
func Mul(a, b ludeme.IntFunction) *Binary { return NewBinary(OpMul, a, b) }
func Div(a, b ludeme.IntFunction) *Binary { return NewBinary(OpDiv, a, b) }
func Mod(a, b ludeme.IntFunction) *Binary { return NewBinary(OpMod, a, b) }
func Pow(a, b ludeme.IntFunction) *Binary { return NewBinary(OpPow, a, b) }
func Min(a, b ludeme.IntFunction) *Binary { return NewBinary(OpMin, a, b) }
func Max(a, b ludeme.IntFunction) *Binary { return NewBinary(OpMax, a, b) }

func (n *Binary) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Binary) eval(c *game.Context) int {
	x, y := n.a.Eval(c), n.b.Eval(c)
	switch n.op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		if y == 0 {
			return 0
		}
		return x / y
	case OpMod:
		if y == 0 {
			return 0
		}
		return x % y
	case OpPow:
		return pow(x, y)
	case OpMin:
		return min(x, y)
	case OpMax:
		return max(x, y)
	}
	return 0
}

func pow(x, y int) int {
	if y < 0 {
		return 0
	}
	r := 1
	for ; y > 0; y >>= 1 {
		if y&1 == 1 {
			r *= x
		}
		x *= x
	}
	return r
}

func (n *Binary) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

func (n *Binary) WillCrash(g *game.Game) bool {
	crash := n.Base.WillCrash(g)
	if n.op != OpDiv && n.op != OpMod {
		return crash
	}
	if !n.b.IsStatic() {
		return crash
	}
	n.b.Preprocess(g)
	zero := n.b.Eval(game.NewPlaceholderContext(g)) == 0
	if ludeme.Crash(g, zero, n, "division by zero") {
		crash = true
	}
	return crash
}

type Abs struct {
	ludeme.Base
	a      ludeme.IntFunction
	folded ludeme.Cell[int]
}

func NewAbs(a ludeme.IntFunction) *Abs {
	return &Abs{Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Arithmetic)}, a), a: a}
}

func (n *Abs) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Abs) eval(c *game.Context) int {
	v := n.a.Eval(c)
	if v < 0 {
		return -v
	}
	return v
}

func (n *Abs) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// If picks then or otherwise depending on cond.
type If struct {
	ludeme.Base
	cond            ludeme.BooleanFunction
	then, otherwise ludeme.IntFunction
	folded          ludeme.Cell[int]
}

func NewIf(cond ludeme.BooleanFunction, then, otherwise ludeme.IntFunction) *If {
	return &If{
		Base:      ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Conditional)}, cond, then, otherwise),
		cond:      cond,
		then:      then,
		otherwise: otherwise,
	}
}

func (n *If) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *If) eval(c *game.Context) int {
	if n.cond.Eval(c) {
		return n.then.Eval(c)
	}
	return n.otherwise.Eval(c)
}

func (n *If) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// FromDim turns a board dimension into an integer expression.
type FromDim struct {
	ludeme.Base
	d ludeme.DimFunction
}

func NewFromDim(d ludeme.DimFunction) *FromDim {
	return &FromDim{Base: ludeme.NewBase(ludeme.Traits{}, d), d: d}
}

func (n *FromDim) Eval(*game.Context) int { return n.d.Eval() }
