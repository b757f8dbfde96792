package regions

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type SetOp uint8

const (
	OpUnion SetOp = iota
	OpIntersection
	OpDifference
)

// Set combines regions. Difference removes every later region from the
// first one.
type Set struct {
	ludeme.Base
	op     SetOp
	list   []ludeme.RegionFunction
	folded ludeme.Cell[board.Region]
}

func newSet(op SetOp, list ...ludeme.RegionFunction) *Set {
	return &Set{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.SetOperation)}, ludeme.Of(list...)...),
		op:   op,
		list: list,
	}
}

func Union(list ...ludeme.RegionFunction) *Set { return newSet(OpUnion, list...) }
func Intersection(list ...ludeme.RegionFunction) *Set { return newSet(OpIntersection, list...) }
func Difference(list ...ludeme.RegionFunction) *Set { return newSet(OpDifference, list...) }

func (n *Set) Eval(c *game.Context) board.Region {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Set) eval(c *game.Context) board.Region {
	if len(n.list) == 0 {
		return board.NewRegion()
	}
	r := n.list[0].Eval(c).Clone()
	for _, o := range n.list[1:] {
		switch n.op {
		case OpUnion:
			r = r.Union(o.Eval(c))
		case OpIntersection:
			r = r.Intersection(o.Eval(c))
		case OpDifference:
			r = r.Difference(o.Eval(c))
		}
	}
	return r
}

func (n *Set) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// Filter keeps the sites of a region for which cond holds with the site
// register bound to them.
type Filter struct {
	ludeme.Base
	region ludeme.RegionFunction
	cond   ludeme.BooleanFunction
	folded ludeme.Cell[board.Region]
}

func NewFilter(region ludeme.RegionFunction, cond ludeme.BooleanFunction) *Filter {
	return &Filter{
		Base: ludeme.NewBase(ludeme.Traits{
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegSite),
		}, region, cond),
		region: region,
		cond:   cond,
	}
}

func (n *Filter) Eval(c *game.Context) board.Region {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Filter) eval(c *game.Context) board.Region {
	out := board.NewRegion()
	restore := c.Bind(game.RegSite, c.Site())
	defer restore()
	for _, s := range n.region.Eval(c).Sites() {
		c.Set(game.RegSite, s)
		if n.cond.Eval(c) {
			out.Add(s)
		}
	}
	return out
}

func (n *Filter) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }
