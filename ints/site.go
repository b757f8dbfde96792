package ints

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// PieceAt reads one attribute of the piece on a site. Without a level it
// reads the top of the stack; empty or off-board sites read 0.
type PieceAt struct {
	ludeme.Base
	field game.PieceField
	site  ludeme.IntFunction
	level ludeme.IntFunction
}

func newPieceAt(f game.PieceField, site, level ludeme.IntFunction) *PieceAt {
	t := ludeme.Traits{Dynamic: true}
	switch f {
	case game.FieldState:
		t.Flags |= game.FlagSiteState
		t.Concepts = concept.Of(concept.SiteState)
	case game.FieldValue:
		t.Flags |= game.FlagPieceValue
		t.Concepts = concept.Of(concept.PieceValue)
	}
	if level != nil {
		t.Flags |= game.FlagStacking
	}
	return &PieceAt{Base: ludeme.NewBase(t, site, level), field: f, site: site, level: level}
}

func What(site, level ludeme.IntFunction) *PieceAt { return newPieceAt(game.FieldWhat, site, level) }
func Who(site, level ludeme.IntFunction) *PieceAt { return newPieceAt(game.FieldWho, site, level) }
func State(site, level ludeme.IntFunction) *PieceAt { return newPieceAt(game.FieldState, site, level) }
func ValueAt(site, level ludeme.IntFunction) *PieceAt {
	return newPieceAt(game.FieldValue, site, level)
}

func (n *PieceAt) Eval(c *game.Context) int {
	level := board.Off
	if n.level != nil {
		level = n.level.Eval(c)
		if level < 0 {
			return 0
		}
	}
	p := c.State().PieceAt(n.site.Eval(c), level)
	switch n.field {
	case game.FieldWho:
		return p.Who
	case game.FieldState:
		return p.State
	case game.FieldValue:
		return p.Value
	}
	return p.What
}

func (n *PieceAt) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if n.level != nil && ludeme.Require(g, g.IsStacking(), n, "reads a stack level in a game without stacking") {
		missing = true
	}
	return missing
}

// Coord is the row or column of a site, or board.Off.
type Coord struct {
	ludeme.Base
	site   ludeme.IntFunction
	column bool
	folded ludeme.Cell[int]
}

func Row(site ludeme.IntFunction) *Coord {
	return &Coord{Base: ludeme.NewBase(ludeme.Traits{}, site), site: site}
}

func Column(site ludeme.IntFunction) *Coord {
	return &Coord{Base: ludeme.NewBase(ludeme.Traits{}, site), site: site, column: true}
}

func (n *Coord) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *Coord) eval(c *game.Context) int {
	s := n.site.Eval(c)
	if n.column {
		return c.Board().Column(s)
	}
	return c.Board().Row(s)
}

func (n *Coord) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

func (n *Coord) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.Board().Kind() == board.KindGrid, n, "rows and columns need a grid board") {
		missing = true
	}
	return missing
}
