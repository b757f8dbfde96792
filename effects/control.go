package effects

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Seq runs its effects in order.
type Seq struct {
	ludeme.Base
	list []ludeme.Effect
}

func NewSeq(list ...ludeme.Effect) *Seq {
	return &Seq{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, ludeme.Of(list...)...), list: list}
}

func (n *Seq) Eval(c *game.Context) {
	for _, e := range n.list {
		e.Eval(c)
	}
}

// If runs then when cond holds and otherwise (which may be nil) when it
// does not.
type If struct {
	ludeme.Base
	cond            ludeme.BooleanFunction
	then, otherwise ludeme.Effect
}

func NewIf(cond ludeme.BooleanFunction, then, otherwise ludeme.Effect) *If {
	return &If{
		Base:      ludeme.NewBase(dynamic(0, concept.Conditional), cond, then, otherwise),
		cond:      cond,
		then:      then,
		otherwise: otherwise,
	}
}

func (n *If) Eval(c *game.Context) {
	switch {
	case n.cond.Eval(c):
		n.then.Eval(c)
	case n.otherwise != nil:
		n.otherwise.Eval(c)
	}
}

// ForEachSite runs an effect with the site register bound to each site of
// a region. The region is evaluated once, before any effect runs.
type ForEachSite struct {
	ludeme.Base
	region ludeme.RegionFunction
	effect ludeme.Effect
}

func NewForEachSite(region ludeme.RegionFunction, effect ludeme.Effect) *ForEachSite {
	return &ForEachSite{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.Iteration),
			Writes:   game.RegistersOf(game.RegSite),
		}, region, effect),
		region: region,
		effect: effect,
	}
}

func (n *ForEachSite) Eval(c *game.Context) {
	restore := c.Bind(game.RegSite, c.Site())
	defer restore()
	for _, s := range n.region.Eval(c).Sites() {
		c.Set(game.RegSite, s)
		n.effect.Eval(c)
	}
}
