// Package regions holds the region-valued rule nodes.
package regions

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Named is a board region that never changes: all sites, corners,
// perimeter or centre.
type Named struct {
	ludeme.Base
	kind   namedKind
	folded ludeme.Cell[board.Region]
}

type namedKind uint8

const (
	namedBoard namedKind = iota
	namedCorners
	namedPerimeter
	namedCentre
)

func newNamed(k namedKind, cs ...concept.Concept) *Named {
	return &Named{Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(cs...)}), kind: k}
}

func Board() *Named { return newNamed(namedBoard) }
func Corners() *Named { return newNamed(namedCorners, concept.Corners) }
func Perimeter() *Named { return newNamed(namedPerimeter, concept.Perimeter) }
func Centre() *Named { return newNamed(namedCentre, concept.Centre) }

func (n *Named) Eval(c *game.Context) board.Region {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Named) eval(c *game.Context) board.Region {
	b := c.Board()
	switch n.kind {
	case namedCorners:
		return b.Corners()
	case namedPerimeter:
		return b.Perimeter()
	case namedCentre:
		return b.Centre()
	}
	return b.AllSites()
}

func (n *Named) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

func (n *Named) MissingRequirement(g *game.Game) bool {
	if n.kind != namedCorners && n.kind != namedCentre {
		return false
	}
	return ludeme.Require(g, g.Board().Kind() == board.KindGrid, n, "corners and centre need a grid board")
}

// Empty is the set of sites with no piece.
type Empty struct {
	ludeme.Base
}

func NewEmpty() *Empty {
	return &Empty{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true})}
}

func (n *Empty) Eval(c *game.Context) board.Region { return c.State().Empty() }

// Occupied is the set of sites whose top piece belongs to the player, or
// to anyone without one.
type Occupied struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewOccupied(player ludeme.IntFunction) *Occupied {
	return &Occupied{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, player), player: player}
}

func (n *Occupied) Eval(c *game.Context) board.Region {
	who := 0
	if n.player != nil {
		who = n.player.Eval(c)
	}
	return c.State().Occupied(who)
}

// Adjacent is the neighbourhood of a site in the given directions; graph
// boards use their edges.
type Adjacent struct {
	ludeme.Base
	site   ludeme.IntFunction
	dirs   board.DirectionSet
	folded ludeme.Cell[board.Region]
}

func NewAdjacent(site ludeme.IntFunction, dirs board.DirectionSet) *Adjacent {
	cs := []concept.Concept{concept.Adjacency}
	if dirs.UsesDiagonals() {
		cs = append(cs, concept.DiagonalDirection)
	}
	if dirs&board.Orthogonal != 0 {
		cs = append(cs, concept.OrthogonalDirection)
	}
	return &Adjacent{
		Base: ludeme.NewBase(ludeme.Traits{Concepts: concept.Of(cs...)}, site),
		site: site,
		dirs: dirs,
	}
}

func (n *Adjacent) Eval(c *game.Context) board.Region {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Adjacent) eval(c *game.Context) board.Region {
	return board.NewRegion(c.Board().Neighbours(n.site.Eval(c), n.dirs)...)
}

func (n *Adjacent) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

func (n *Adjacent) GameFlags(g *game.Game) game.Flags {
	f := n.Base.GameFlags(g)
	if g.Board().Kind() == board.KindGraph {
		f |= game.FlagGraph
	}
	return f
}

func (n *Adjacent) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.Board().Kind() == board.KindGrid || !n.dirs.UsesDiagonals(), n,
		"diagonal directions on a graph board") {
		missing = true
	}
	return missing
}

// Line is one row or column of the board; empty if out of range.
type Line struct {
	ludeme.Base
	index  ludeme.IntFunction
	column bool
	folded ludeme.Cell[board.Region]
}

func Row(index ludeme.IntFunction) *Line {
	return &Line{Base: ludeme.NewBase(ludeme.Traits{}, index), index: index}
}

func Column(index ludeme.IntFunction) *Line {
	return &Line{Base: ludeme.NewBase(ludeme.Traits{}, index), index: index, column: true}
}

func (n *Line) Eval(c *game.Context) board.Region {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Line) eval(c *game.Context) board.Region {
	i := n.index.Eval(c)
	if n.column {
		return c.Board().ColumnSites(i)
	}
	return c.Board().RowSites(i)
}

func (n *Line) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// Visited is the set of sites visited so far this turn.
type Visited struct {
	ludeme.Base
}

func NewVisited() *Visited {
	return &Visited{Base: ludeme.NewBase(ludeme.Traits{
		Dynamic:  true,
		Flags:    game.FlagVisited,
		Concepts: concept.Of(concept.Visited),
		Reads:    game.RegistersOf(game.RegVisited),
	})}
}

func (n *Visited) Eval(c *game.Context) board.Region { return c.State().VisitedRegion() }

// Sites is an explicit list of sites. Off-board entries are dropped.
type Sites struct {
	ludeme.Base
	sites  []ludeme.IntFunction
	folded ludeme.Cell[board.Region]
}

func NewSites(sites ...ludeme.IntFunction) *Sites {
	return &Sites{Base: ludeme.NewBase(ludeme.Traits{}, ludeme.Of(sites...)...), sites: sites}
}

func (n *Sites) Eval(c *game.Context) board.Region {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Sites) eval(c *game.Context) board.Region {
	r := board.NewRegion()
	for _, s := range n.sites {
		if site := s.Eval(c); c.Board().OnBoard(site) {
			r.Add(site)
		}
	}
	return r
}

func (n *Sites) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// Register reads the region register.
type Register struct {
	ludeme.Base
}

func NewRegister() *Register {
	return &Register{Base: ludeme.NewBase(ludeme.Traits{
		Dynamic: true,
		Reads:   game.RegistersOf(game.RegRegion),
	})}
}

func (n *Register) Eval(c *game.Context) board.Region { return c.Region() }
