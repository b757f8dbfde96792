package moves

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Or concatenates the moves of its generators.
type Or struct {
	ludeme.Base
	list []ludeme.Moves
}

func NewOr(list ...ludeme.Moves) *Or {
	return &Or{
		Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.Disjunction)},
			ludeme.Of(list...)...),
		list: list,
	}
}

func (n *Or) Eval(c *game.Context) []*game.Move {
	var out []*game.Move
	for _, m := range n.list {
		out = append(out, m.Eval(c)...)
	}
	return out
}

// If generates from then when cond holds, otherwise from otherwise (which
// may be nil).
type If struct {
	ludeme.Base
	cond            ludeme.BooleanFunction
	then, otherwise ludeme.Moves
}

func NewIf(cond ludeme.BooleanFunction, then, otherwise ludeme.Moves) *If {
	return &If{
		Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.Conditional)},
			cond, then, otherwise),
		cond:      cond,
		then:      then,
		otherwise: otherwise,
	}
}

func (n *If) Eval(c *game.Context) []*game.Move {
	if n.cond.Eval(c) {
		return n.then.Eval(c)
	}
	if n.otherwise == nil {
		return nil
	}
	return n.otherwise.Eval(c)
}

// Priority returns the moves of the first generator that has any.
type Priority struct {
	ludeme.Base
	list []ludeme.Moves
}

func NewPriority(list ...ludeme.Moves) *Priority {
	return &Priority{
		Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.Priority)},
			ludeme.Of(list...)...),
		list: list,
	}
}

func (n *Priority) Eval(c *game.Context) []*game.Move {
	for _, m := range n.list {
		if ms := m.Eval(c); len(ms) > 0 {
			return ms
		}
	}
	return nil
}

// ForEachPlayer generates with the player register bound to each player
// in turn.
type ForEachPlayer struct {
	ludeme.Base
	moves ludeme.Moves
}

func NewForEachPlayer(moves ludeme.Moves) *ForEachPlayer {
	return &ForEachPlayer{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegPlayer),
		}, moves),
		moves: moves,
	}
}

func (n *ForEachPlayer) Eval(c *game.Context) []*game.Move {
	restore := c.Bind(game.RegPlayer, c.Player())
	defer restore()
	var out []*game.Move
	for p := 1; p <= c.Game().NumPlayers(); p++ {
		c.Set(game.RegPlayer, p)
		out = append(out, n.moves.Eval(c)...)
	}
	return out
}

// ForEachTeam generates with the team register bound to each team, in
// order of first appearance among the players.
type ForEachTeam struct {
	ludeme.Base
	moves ludeme.Moves
}

func NewForEachTeam(moves ludeme.Moves) *ForEachTeam {
	return &ForEachTeam{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Flags:    game.FlagTeam,
			Concepts: concept.Of(concept.Iteration, concept.Team),
			Writes:   game.RegistersOf(game.RegTeam),
		}, moves),
		moves: moves,
	}
}

func (n *ForEachTeam) Eval(c *game.Context) []*game.Move {
	restore := c.Bind(game.RegTeam, c.Team())
	defer restore()
	g := c.Game()
	seen := map[int]bool{}
	var out []*game.Move
	for p := 1; p <= g.NumPlayers(); p++ {
		t := g.Team(p)
		if seen[t] {
			continue
		}
		seen[t] = true
		c.Set(game.RegTeam, t)
		out = append(out, n.moves.Eval(c)...)
	}
	return out
}

func (n *ForEachTeam) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.HasTeams(), n, "iterates over teams in a game without teams") {
		missing = true
	}
	return missing
}

// ForEachSite generates with the site register bound to each site of a
// region.
type ForEachSite struct {
	ludeme.Base
	region ludeme.RegionFunction
	moves  ludeme.Moves
}

func NewForEachSite(region ludeme.RegionFunction, moves ludeme.Moves) *ForEachSite {
	return &ForEachSite{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegSite),
		}, region, moves),
		region: region,
		moves:  moves,
	}
}

func (n *ForEachSite) Eval(c *game.Context) []*game.Move {
	restore := c.Bind(game.RegSite, c.Site())
	defer restore()
	var out []*game.Move
	for _, s := range n.region.Eval(c).Sites() {
		c.Set(game.RegSite, s)
		out = append(out, n.moves.Eval(c)...)
	}
	return out
}

// ForEachValue generates with the value register bound to each element of
// an array.
type ForEachValue struct {
	ludeme.Base
	array ludeme.IntArrayFunction
	moves ludeme.Moves
}

func NewForEachValue(array ludeme.IntArrayFunction, moves ludeme.Moves) *ForEachValue {
	return &ForEachValue{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegValue),
		}, array, moves),
		array: array,
		moves: moves,
	}
}

func (n *ForEachValue) Eval(c *game.Context) []*game.Move {
	restore := c.Bind(game.RegValue, c.Value())
	defer restore()
	var out []*game.Move
	for _, v := range n.array.Eval(c) {
		c.Set(game.RegValue, v)
		out = append(out, n.moves.Eval(c)...)
	}
	return out
}

// ForEachRegion generates with the region register bound to each region
// in turn.
type ForEachRegion struct {
	ludeme.Base
	regions []ludeme.RegionFunction
	moves   ludeme.Moves
}

func NewForEachRegion(moves ludeme.Moves, regions ...ludeme.RegionFunction) *ForEachRegion {
	return &ForEachRegion{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegRegion),
		}, append(ludeme.Of(regions...), moves)...),
		regions: regions,
		moves:   moves,
	}
}

func (n *ForEachRegion) Eval(c *game.Context) []*game.Move {
	var out []*game.Move
	for _, r := range n.regions {
		restore := c.BindRegion(r.Eval(c))
		out = append(out, n.moves.Eval(c)...)
		restore()
	}
	return out
}
