package booleans

import (
	"github.com/samber/lo"

	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type AllType uint8

const (
	AllValues AllType = iota
	AllSites
	AllLevels
	AllPassed
	AllDifferent
)

type AllParams struct {
	Array     ludeme.IntArrayFunction
	Region    ludeme.RegionFunction
	Site      ludeme.IntFunction
	Condition ludeme.BooleanFunction
}

// AllDispatcher is the entry point of the All family. It must never be
// evaluated itself.
type AllDispatcher struct {
	ludeme.Base
}

func (d *AllDispatcher) Eval(*game.Context) bool {
	ludeme.Misuse(d, "Eval")
	return false
}

func All(t AllType, p AllParams) (ludeme.BooleanFunction, error) {
	return (&AllDispatcher{}).Construct(t, p)
}

func (d *AllDispatcher) Construct(t AllType, p AllParams) (ludeme.BooleanFunction, error) {
	array := ludeme.P("array", p.Array != nil)
	cond := ludeme.P("condition", p.Condition != nil)
	switch t {
	case AllValues:
		if err := ludeme.FirstError(ludeme.Required("All Values", array), ludeme.Required("All Values", cond)); err != nil {
			return nil, err
		}
		return NewAllValues(p.Array, p.Condition), nil
	case AllSites:
		err := ludeme.FirstError(
			ludeme.Required("All Sites", ludeme.P("region", p.Region != nil)),
			ludeme.Required("All Sites", cond),
		)
		if err != nil {
			return nil, err
		}
		return NewAllSites(p.Region, p.Condition), nil
	case AllLevels:
		err := ludeme.FirstError(
			ludeme.Required("All Levels", ludeme.P("site", p.Site != nil)),
			ludeme.Required("All Levels", cond),
		)
		if err != nil {
			return nil, err
		}
		return NewAllLevels(p.Site, p.Condition), nil
	case AllPassed:
		if p.Array != nil || p.Region != nil || p.Site != nil || p.Condition != nil {
			return nil, ludeme.Illegal("All Passed", "takes no arguments")
		}
		return NewAllPassed(), nil
	case AllDifferent:
		if err := ludeme.Required("All Different", array); err != nil {
			return nil, err
		}
		return NewAllDifferent(p.Array), nil
	}
	return nil, ludeme.Illegal("All", "unknown type %d", t)
}

// AllValuesHold is true if the condition holds with the value register
// bound to every element of the array. If the condition never reads the
// value register it is evaluated once.
type AllValuesHold struct {
	ludeme.Base
	array  ludeme.IntArrayFunction
	cond   ludeme.BooleanFunction
	folded ludeme.Cell[bool]
}

func NewAllValues(array ludeme.IntArrayFunction, cond ludeme.BooleanFunction) *AllValuesHold {
	return &AllValuesHold{
		Base: ludeme.NewBase(ludeme.Traits{
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegValue),
		}, array, cond),
		array: array,
		cond:  cond,
	}
}

func (n *AllValuesHold) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *AllValuesHold) eval(c *game.Context) bool {
	values := n.array.Eval(c)
	if len(values) == 0 {
		return true
	}
	if !ludeme.NeedsIsolation(game.RegistersOf(game.RegValue), n.cond) {
		return n.cond.Eval(c)
	}
	restore := c.Bind(game.RegValue, values[0])
	defer restore()
	for _, v := range values {
		c.Set(game.RegValue, v)
		if !n.cond.Eval(c) {
			return false
		}
	}
	return true
}

func (n *AllValuesHold) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// AllSitesHold is AllValuesHold over the sites of a region, through the
// site register.
type AllSitesHold struct {
	ludeme.Base
	region ludeme.RegionFunction
	cond   ludeme.BooleanFunction
	folded ludeme.Cell[bool]
}

func NewAllSites(region ludeme.RegionFunction, cond ludeme.BooleanFunction) *AllSitesHold {
	return &AllSitesHold{
		Base: ludeme.NewBase(ludeme.Traits{
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegSite),
		}, region, cond),
		region: region,
		cond:   cond,
	}
}

func (n *AllSitesHold) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *AllSitesHold) eval(c *game.Context) bool {
	sites := n.region.Eval(c).Sites()
	if len(sites) == 0 {
		return true
	}
	restore := c.Bind(game.RegSite, sites[0])
	defer restore()
	for _, s := range sites {
		c.Set(game.RegSite, s)
		if !n.cond.Eval(c) {
			return false
		}
	}
	return true
}

func (n *AllSitesHold) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// AllLevelsHold checks the condition for every level of the stack on a
// site, with the site and level registers bound.
type AllLevelsHold struct {
	ludeme.Base
	site ludeme.IntFunction
	cond ludeme.BooleanFunction
}

func NewAllLevels(site ludeme.IntFunction, cond ludeme.BooleanFunction) *AllLevelsHold {
	return &AllLevelsHold{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Flags:    game.FlagStacking,
			Concepts: concept.Of(concept.Iteration, concept.Stacking),
			Writes:   game.RegistersOf(game.RegSite, game.RegLevel),
		}, site, cond),
		site: site,
		cond: cond,
	}
}

func (n *AllLevelsHold) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.IsStacking(), n, "iterates over stack levels in a game without stacking") {
		missing = true
	}
	return missing
}

func (n *AllLevelsHold) Eval(c *game.Context) bool {
	site := n.site.Eval(c)
	saved := c.Registers()
	defer c.SetRegisters(saved)
	c.Set(game.RegSite, site)
	for lvl := 0; lvl < c.State().StackSize(site); lvl++ {
		c.Set(game.RegLevel, lvl)
		if !n.cond.Eval(c) {
			return false
		}
	}
	return true
}

// AllPlayersPassed is true if each active player's latest move was a
// pass.
type AllPlayersPassed struct {
	ludeme.Base
}

func NewAllPassed() *AllPlayersPassed {
	return &AllPlayersPassed{Base: ludeme.NewBase(ludeme.Traits{
		Dynamic:  true,
		Flags:    game.FlagLastMove,
		Concepts: concept.Of(concept.PassMove),
	})}
}

func (n *AllPlayersPassed) Eval(c *game.Context) bool {
	t := c.Trial()
	need := c.State().NumActive()
	if need == 0 || t.NumMoves() < need {
		return false
	}
	seen := map[int]bool{}
	for back := 0; back < t.NumMoves() && len(seen) < need; back++ {
		m := t.MoveAt(back)
		if seen[m.Mover()] {
			continue
		}
		if !m.IsPass() {
			return false
		}
		seen[m.Mover()] = true
	}
	return len(seen) == need
}

type AllDifferentValues struct {
	ludeme.Base
	array  ludeme.IntArrayFunction
	folded ludeme.Cell[bool]
}

func NewAllDifferent(array ludeme.IntArrayFunction) *AllDifferentValues {
	return &AllDifferentValues{Base: ludeme.NewBase(ludeme.Traits{}, array), array: array}
}

func (n *AllDifferentValues) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *AllDifferentValues) eval(c *game.Context) bool {
	values := n.array.Eval(c)
	return len(lo.Uniq(values)) == len(values)
}

func (n *AllDifferentValues) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }
