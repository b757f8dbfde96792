package moves

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// fromSites evaluates from, defaulting to the sites of the mover's
// pieces.
func fromSites(c *game.Context, from ludeme.RegionFunction) []int {
	if from == nil {
		return c.State().Occupied(c.Mover()).Sites()
	}
	return from.Eval(c).Sites()
}

func directionConcepts(dirs board.DirectionSet, cs ...concept.Concept) concept.Set {
	if dirs&board.Orthogonal != 0 {
		cs = append(cs, concept.OrthogonalDirection)
	}
	if dirs.UsesDiagonals() {
		cs = append(cs, concept.DiagonalDirection)
	}
	return concept.Of(cs...)
}

var travelWrites = game.RegistersOf(game.RegFrom, game.RegTo, game.RegBetween)

// Step moves a piece to a neighbouring site. The target is accepted when
// to holds, evaluated with From and To bound; without it the target must
// be empty. Landing on a piece replaces it.
type Step struct {
	ludeme.Base
	from ludeme.RegionFunction
	dirs board.DirectionSet
	to   ludeme.BooleanFunction
	then []ludeme.Effect
}

func NewStep(from ludeme.RegionFunction, dirs board.DirectionSet, to ludeme.BooleanFunction, then ...ludeme.Effect) *Step {
	return &Step{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: directionConcepts(dirs, concept.StepMove),
			Writes:   travelWrites,
		}, kids(then, from, to)...),
		from: from,
		dirs: dirs,
		to:   to,
		then: then,
	}
}

func (n *Step) Eval(c *game.Context) []*game.Move {
	saved := c.Registers()
	defer c.SetRegisters(saved)
	mover := c.Mover()
	var out []*game.Move
	for _, from := range fromSites(c, n.from) {
		c.Set(game.RegFrom, from)
		for _, to := range c.Board().Neighbours(from, n.dirs) {
			c.Set(game.RegTo, to)
			if !targetOK(c, n.to, to) {
				continue
			}
			out = append(out, game.NewMove(game.MoveStep, mover, from, to,
				game.NewRelocate(from, to, false)).WithWhat(c.State().What(from)))
		}
	}
	return withThen(out, n.then)
}

func targetOK(c *game.Context, cond ludeme.BooleanFunction, site int) bool {
	if cond == nil {
		return c.State().IsEmpty(site)
	}
	return cond.Eval(c)
}

// Slide moves a piece any distance in a straight line while each site
// passed over satisfies between (bound as Between and To); without it
// the sites must be empty.
type Slide struct {
	ludeme.Base
	from    ludeme.RegionFunction
	dirs    board.DirectionSet
	between ludeme.BooleanFunction
	then    []ludeme.Effect
}

func NewSlide(from ludeme.RegionFunction, dirs board.DirectionSet, between ludeme.BooleanFunction, then ...ludeme.Effect) *Slide {
	return &Slide{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: directionConcepts(dirs, concept.SlideMove),
			Writes:   travelWrites,
		}, kids(then, from, between)...),
		from:    from,
		dirs:    dirs,
		between: between,
		then:    then,
	}
}

func (n *Slide) Eval(c *game.Context) []*game.Move {
	saved := c.Registers()
	defer c.SetRegisters(saved)
	b := c.Board()
	mover := c.Mover()
	var out []*game.Move
	for _, from := range fromSites(c, n.from) {
		c.Set(game.RegFrom, from)
		for _, d := range n.dirs.List() {
			for to := b.Step(from, d); to != board.Off; to = b.Step(to, d) {
				c.Set(game.RegBetween, to)
				c.Set(game.RegTo, to)
				if !targetOK(c, n.between, to) {
					break
				}
				out = append(out, game.NewMove(game.MoveSlide, mover, from, to,
					game.NewRelocate(from, to, false)).WithWhat(c.State().What(from)))
			}
		}
	}
	return withThen(out, n.then)
}

func (n *Slide) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.Board().Kind() == board.KindGrid, n, "slides need a grid board") {
		missing = true
	}
	return missing
}

// Hop jumps over an adjacent site to the one beyond it. between (bound as
// Between) defaults to an enemy piece, to (bound as To) to an empty site.
// With capture set the piece jumped over is removed.
type Hop struct {
	ludeme.Base
	from    ludeme.RegionFunction
	dirs    board.DirectionSet
	between ludeme.BooleanFunction
	to      ludeme.BooleanFunction
	capture bool
	then    []ludeme.Effect
}

func NewHop(from ludeme.RegionFunction, dirs board.DirectionSet, between, to ludeme.BooleanFunction,
	capture bool, then ...ludeme.Effect) *Hop {
	cs := []concept.Concept{concept.HopMove}
	if capture {
		cs = append(cs, concept.HopCapture, concept.Capture)
	}
	return &Hop{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: directionConcepts(dirs, cs...),
			Writes:   travelWrites,
		}, kids(then, from, between, to)...),
		from:    from,
		dirs:    dirs,
		between: between,
		to:      to,
		capture: capture,
		then:    then,
	}
}

func (n *Hop) Eval(c *game.Context) []*game.Move {
	saved := c.Registers()
	defer c.SetRegisters(saved)
	b := c.Board()
	g := c.Game()
	s := c.State()
	mover := c.Mover()
	var out []*game.Move
	for _, from := range fromSites(c, n.from) {
		c.Set(game.RegFrom, from)
		for _, d := range n.dirs.List() {
			mid := b.Step(from, d)
			to := b.Step(mid, d)
			if mid == board.Off || to == board.Off {
				continue
			}
			c.Set(game.RegBetween, mid)
			c.Set(game.RegTo, to)
			var overOK bool
			if n.between == nil {
				who := s.Who(mid)
				overOK = who != 0 && g.Team(who) != g.Team(mover)
			} else {
				overOK = n.between.Eval(c)
			}
			if !overOK || !targetOK(c, n.to, to) {
				continue
			}
			actions := []game.Action{game.NewRelocate(from, to, false)}
			if n.capture {
				actions = append(actions, game.NewRemove(mid, board.Off))
			}
			out = append(out, game.NewMove(game.MoveHop, mover, from, to, actions...).WithWhat(s.What(from)))
		}
	}
	return withThen(out, n.then)
}

func (n *Hop) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.Board().Kind() == board.KindGrid, n, "hops need a grid board") {
		missing = true
	}
	return missing
}
