package ints

import (
	"github.com/samber/lo"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type Sum struct {
	ludeme.Base
	array  ludeme.IntArrayFunction
	folded ludeme.Cell[int]
}

func NewSum(array ludeme.IntArrayFunction) *Sum {
	return &Sum{Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.Arithmetic)}, array), array: array}
}

func (n *Sum) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Sum) eval(c *game.Context) int {
	return lo.Sum(n.array.Eval(c))
}

func (n *Sum) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// At is the element of an array at an index, or board.Off if the index
// is out of range.
type At struct {
	ludeme.Base
	array  ludeme.IntArrayFunction
	index  ludeme.IntFunction
	folded ludeme.Cell[int]
}

func NewAt(array ludeme.IntArrayFunction, index ludeme.IntFunction) *At {
	return &At{Base: ludeme.NewBase(ludeme.Traits{}, array, index), array: array, index: index}
}

func (n *At) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *At) eval(c *game.Context) int {
	values := n.array.Eval(c)
	i := n.index.Eval(c)
	if i < 0 || i >= len(values) {
		return board.Off
	}
	return values[i]
}

func (n *At) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// Random draws uniformly from [0, n). It is never static, so it is never
// folded, whatever its bound.
type Random struct {
	ludeme.Base
	bound ludeme.IntFunction
}

func NewRandom(bound ludeme.IntFunction) *Random {
	return &Random{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Flags:    game.FlagStochastic,
			Concepts: concept.Of(concept.Random),
		}, bound),
		bound: bound,
	}
}

func (n *Random) Eval(c *game.Context) int {
	b := n.bound.Eval(c)
	if b <= 0 {
		return 0
	}
	return c.RNG().Intn(b)
}
