// Package booleans holds the boolean-valued rule nodes: logic,
// comparisons and the Is, Can, All and No families.
package booleans

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type Const struct {
	ludeme.Base
	v bool
}

func True() *Const {
	return &Const{Base: ludeme.NewBase(ludeme.Traits{}), v: true}
}

func False() *Const {
	return &Const{Base: ludeme.NewBase(ludeme.Traits{}), v: false}
}

func (n *Const) Eval(*game.Context) bool { return n.v }

// And is true if every operand is. It stops at the first false one.
type And struct {
	ludeme.Base
	list   []ludeme.BooleanFunction
	folded ludeme.Cell[bool]
}

func NewAnd(list ...ludeme.BooleanFunction) *And {
	return &And{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Conjunction)},
			ludeme.Of(list...)...),
		list: list,
	}
}

func (n *And) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *And) eval(c *game.Context) bool {
	for _, b := range n.list {
		if !b.Eval(c) {
			return false
		}
	}
	return true
}

func (n *And) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

type Or struct {
	ludeme.Base
	list   []ludeme.BooleanFunction
	folded ludeme.Cell[bool]
}

func NewOr(list ...ludeme.BooleanFunction) *Or {
	return &Or{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Disjunction)},
			ludeme.Of(list...)...),
		list: list,
	}
}

func (n *Or) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Or) eval(c *game.Context) bool {
	for _, b := range n.list {
		if b.Eval(c) {
			return true
		}
	}
	return false
}

func (n *Or) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

type Not struct {
	ludeme.Base
	a      ludeme.BooleanFunction
	folded ludeme.Cell[bool]
}

func NewNot(a ludeme.BooleanFunction) *Not {
	return &Not{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Negation)}, a),
		a:    a,
	}
}

func (n *Not) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return !n.a.Eval(c)
}

func (n *Not) Preprocess(g *game.Game) {
	ludeme.Fold(g, n, &n.folded, func(c *game.Context) bool { return !n.a.Eval(c) })
}

type Xor struct {
	ludeme.Base
	a, b   ludeme.BooleanFunction
	folded ludeme.Cell[bool]
}

func NewXor(a, b ludeme.BooleanFunction) *Xor {
	return &Xor{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.ExclusiveDisjunction)}, a, b),
		a:    a,
		b:    b,
	}
}

func (n *Xor) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Xor) eval(c *game.Context) bool {
	return n.a.Eval(c) != n.b.Eval(c)
}

func (n *Xor) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// If evaluates then or otherwise depending on cond. A missing otherwise
// is false.
type If struct {
	ludeme.Base
	cond, then, otherwise ludeme.BooleanFunction
	folded                ludeme.Cell[bool]
}

func NewIf(cond, then, otherwise ludeme.BooleanFunction) *If {
	return &If{
		Base:      ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Conditional)}, cond, then, otherwise),
		cond:      cond,
		then:      then,
		otherwise: otherwise,
	}
}

func (n *If) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *If) eval(c *game.Context) bool {
	if n.cond.Eval(c) {
		return n.then.Eval(c)
	}
	if n.otherwise == nil {
		return false
	}
	return n.otherwise.Eval(c)
}

func (n *If) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }
