// Package moves holds the move generators. A generator returns the
// candidate moves of the mover; applying one goes through
// game.Context.Apply. Every generator is dynamic and never folded.
package moves

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

func withThen(ms []*game.Move, then []ludeme.Effect) []*game.Move {
	if len(then) == 0 {
		return ms
	}
	cs := make([]game.Consequence, len(then))
	for i, e := range then {
		cs[i] = e
	}
	for _, m := range ms {
		m.WithThen(cs...)
	}
	return ms
}

func kids(then []ludeme.Effect, ls ...ludeme.Ludeme) []ludeme.Ludeme {
	return append(ludeme.Of(ls...), ludeme.Of(then...)...)
}

// componentFor evaluates what, or picks the first component owned by the
// mover. It returns 0 if there is none.
func componentFor(c *game.Context, what ludeme.IntFunction) int {
	if what != nil {
		return what.Eval(c)
	}
	mover := c.Mover()
	for i, comp := range c.Game().Components() {
		if comp.Owner == mover {
			return i + 1
		}
	}
	return 0
}

// Add places a new piece on each site of a region. Without stacking only
// empty sites qualify.
type Add struct {
	ludeme.Base
	what  ludeme.IntFunction
	to    ludeme.RegionFunction
	stack bool
	then  []ludeme.Effect
}

func NewAdd(what ludeme.IntFunction, to ludeme.RegionFunction, stack bool, then ...ludeme.Effect) *Add {
	t := ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.PiecePlacement)}
	if stack {
		t.Flags = game.FlagStacking
	}
	return &Add{
		Base:  ludeme.NewBase(t, kids(then, what, to)...),
		what:  what,
		to:    to,
		stack: stack,
		then:  then,
	}
}

func (n *Add) Eval(c *game.Context) []*game.Move {
	what := componentFor(c, n.what)
	comp, ok := c.Game().Component(what)
	if !ok {
		return nil
	}
	mover := c.Mover()
	s := c.State()
	var out []*game.Move
	for _, site := range n.to.Eval(c).Sites() {
		if !n.stack && !s.IsEmpty(site) {
			continue
		}
		p := game.Piece{What: what, Who: comp.Owner}
		m := game.NewMove(game.MoveAdd, mover, board.Off, site, game.NewAdd(site, p, n.stack)).WithWhat(what)
		out = append(out, m)
	}
	return withThen(out, n.then)
}

func (n *Add) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if n.stack && ludeme.Require(g, g.IsStacking(), n, "stacks pieces in a game without stacking") {
		missing = true
	}
	if ludeme.Require(g, g.NumComponents() > 0, n, "places pieces in a game without components") {
		missing = true
	}
	return missing
}

// Remove takes the top piece off each occupied site of a region.
type Remove struct {
	ludeme.Base
	from ludeme.RegionFunction
	then []ludeme.Effect
}

func NewRemove(from ludeme.RegionFunction, then ...ludeme.Effect) *Remove {
	return &Remove{
		Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.PieceRemoval)},
			kids(then, from)...),
		from: from,
		then: then,
	}
}

func (n *Remove) Eval(c *game.Context) []*game.Move {
	s := c.State()
	var out []*game.Move
	for _, site := range n.from.Eval(c).Sites() {
		if s.IsEmpty(site) {
			continue
		}
		out = append(out, game.NewMove(game.MoveRemove, c.Mover(), board.Off, site,
			game.NewRemove(site, board.Off)).WithWhat(s.What(site)))
	}
	return withThen(out, n.then)
}

// Pass is the single move that does nothing.
type Pass struct {
	ludeme.Base
	then []ludeme.Effect
}

func NewPass(then ...ludeme.Effect) *Pass {
	return &Pass{
		Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.PassMove)},
			ludeme.Of(then...)...),
		then: then,
	}
}

func (n *Pass) Eval(c *game.Context) []*game.Move {
	return withThen([]*game.Move{game.NewPassMove(c.Mover())}, n.then)
}
