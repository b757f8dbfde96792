package effects

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Custodial captures or flips the runs of enemy pieces enclosed between
// the site in the To register and another friendly piece, looking along
// each direction of dirs. A limit above zero caps the length of a run.
// Flipping hands each enclosed piece to the mover, replacing its
// component with the mover's first one.
type Custodial struct {
	ludeme.Base
	dirs  board.DirectionSet
	flip  bool
	limit int
}

func NewCustodial(dirs board.DirectionSet, flip bool, limit int) *Custodial {
	cs := []concept.Concept{concept.CustodialCapture}
	if flip {
		cs = append(cs, concept.Flip)
	} else {
		cs = append(cs, concept.Capture)
	}
	if dirs.UsesDiagonals() {
		cs = append(cs, concept.DiagonalDirection)
	}
	return &Custodial{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(cs...),
			Reads:    game.RegistersOf(game.RegTo),
		}),
		dirs:  dirs,
		flip:  flip,
		limit: limit,
	}
}

func (n *Custodial) Eval(c *game.Context) {
	to := c.To()
	b := c.Board()
	if !b.OnBoard(to) {
		return
	}
	g := c.Game()
	s := c.State()
	mover := c.Mover()
	friend := func(who int) bool { return who != 0 && g.Team(who) == g.Team(mover) }
	enemy := func(who int) bool { return who != 0 && g.Team(who) != g.Team(mover) }

	var enclosed []int
	for _, d := range n.dirs.List() {
		var run []int
		site := b.Step(to, d)
		for site != board.Off && enemy(s.Who(site)) {
			run = append(run, site)
			site = b.Step(site, d)
		}
		if len(run) == 0 || site == board.Off || !friend(s.Who(site)) {
			continue
		}
		if n.limit > 0 && len(run) > n.limit {
			continue
		}
		enclosed = append(enclosed, run...)
	}

	what := moverComponent(g, mover)
	for _, site := range enclosed {
		if !n.flip {
			c.Do(game.NewRemove(site, board.Off))
			continue
		}
		c.Do(game.NewSetWho(site, board.Off, mover))
		if what != 0 {
			c.Do(game.NewSetWhat(site, board.Off, what))
		}
	}
}

func (n *Custodial) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.Board().Kind() == board.KindGrid, n, "custodial captures need a grid board") {
		missing = true
	}
	return missing
}

func moverComponent(g *game.Game, mover int) int {
	for i, comp := range g.Components() {
		if comp.Owner == mover {
			return i + 1
		}
	}
	return 0
}
