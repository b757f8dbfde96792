// Package arrays holds the integer-array valued rule nodes.
package arrays

import (
	"slices"

	"github.com/samber/lo"

	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Literal is a fixed list of integers.
type Literal struct {
	ludeme.Base
	values []int
}

func NewLiteral(values ...int) *Literal {
	return &Literal{Base: ludeme.NewBase(ludeme.Traits{}), values: slices.Clone(values)}
}

func (n *Literal) Eval(*game.Context) []int { return slices.Clone(n.values) }

// Range is every integer from min to max inclusive, empty if max < min.
type Range struct {
	ludeme.Base
	lower, upper ludeme.IntFunction
	folded       ludeme.Cell[[]int]
}

func NewRange(lower, upper ludeme.IntFunction) *Range {
	return &Range{Base: ludeme.NewBase(ludeme.Traits{}, lower, upper), lower: lower, upper: upper}
}

func (n *Range) Eval(c *game.Context) []int {
	if v, ok := n.folded.Get(); ok {
		return slices.Clone(v)
	}
	return n.eval(c)
}

func (n *Range) eval(c *game.Context) []int {
	from, to := n.lower.Eval(c), n.upper.Eval(c)
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}

func (n *Range) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// FromRegion lists the sites of a region in ascending order.
type FromRegion struct {
	ludeme.Base
	region ludeme.RegionFunction
	folded ludeme.Cell[[]int]
}

func NewFromRegion(region ludeme.RegionFunction) *FromRegion {
	return &FromRegion{Base: ludeme.NewBase(ludeme.Traits{}, region), region: region}
}

func (n *FromRegion) Eval(c *game.Context) []int {
	if v, ok := n.folded.Get(); ok {
		return slices.Clone(v)
	}
	return n.eval(c)
}

func (n *FromRegion) eval(c *game.Context) []int {
	return n.region.Eval(c).Sites()
}

func (n *FromRegion) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// Team lists the players of a team.
type Team struct {
	ludeme.Base
	team   ludeme.IntFunction
	folded ludeme.Cell[[]int]
}

func NewTeam(team ludeme.IntFunction) *Team {
	return &Team{
		Base: ludeme.NewBase(ludeme.Traits{Flags: game.FlagTeam, Concepts: concept.Of(concept.Team)}, team),
		team: team,
	}
}

func (n *Team) Eval(c *game.Context) []int {
	if v, ok := n.folded.Get(); ok {
		return slices.Clone(v)
	}
	return n.eval(c)
}

func (n *Team) eval(c *game.Context) []int {
	return c.Game().TeamMembers(n.team.Eval(c))
}

func (n *Team) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// SetOp is a set operation over arrays.
type SetOp uint8

const (
	OpUnion SetOp = iota
	OpIntersection
	OpDifference
)

// Set combines two arrays as sets. The result keeps first-seen order and
// has no duplicates.
type Set struct {
	ludeme.Base
	op     SetOp
	a, b   ludeme.IntArrayFunction
	folded ludeme.Cell[[]int]
}

func newSet(op SetOp, a, b ludeme.IntArrayFunction) *Set {
	return &Set{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(concept.SetOperation)}, a, b),
		op:   op,
		a:    a,
		b:    b,
	}
}

func Union(a, b ludeme.IntArrayFunction) *Set { return newSet(OpUnion, a, b) }
func Intersection(a, b ludeme.IntArrayFunction) *Set { return newSet(OpIntersection, a, b) }
func Difference(a, b ludeme.IntArrayFunction) *Set { return newSet(OpDifference, a, b) }

func (n *Set) Eval(c *game.Context) []int {
	if v, ok := n.folded.Get(); ok {
		return slices.Clone(v)
	}
	return n.eval(c)
}

func (n *Set) eval(c *game.Context) []int {
	x, y := n.a.Eval(c), n.b.Eval(c)
	switch n.op {
	case OpIntersection:
		return lo.Uniq(lo.Intersect(x, y))
	case OpDifference:
		return lo.Uniq(lo.Without(x, y...))
	}
	return lo.Union(x, y)
}

func (n *Set) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// Filter keeps the elements for which cond holds with the value register
// bound to them.
type Filter struct {
	ludeme.Base
	array  ludeme.IntArrayFunction
	cond   ludeme.BooleanFunction
	folded ludeme.Cell[[]int]
}

func NewFilter(array ludeme.IntArrayFunction, cond ludeme.BooleanFunction) *Filter {
	return &Filter{
		Base: ludeme.NewBase(ludeme.Traits{
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegValue),
		}, array, cond),
		array: array,
		cond:  cond,
	}
}

func (n *Filter) Eval(c *game.Context) []int {
	if v, ok := n.folded.Get(); ok {
		return slices.Clone(v)
	}
	return n.eval(c)
}

func (n *Filter) eval(c *game.Context) []int {
	values := n.array.Eval(c)
	restore := c.Bind(game.RegValue, c.Value())
	defer restore()
	return lo.Filter(values, func(v int, _ int) bool {
		c.Set(game.RegValue, v)
		return n.cond.Eval(c)
	})
}

func (n *Filter) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }
