// Package effects holds the state-mutating rules: start placements and
// the consequences run after a move. Every effect changes the state only
// through game.Context.Do, so a consequence applied as part of a move is
// undone with it.
package effects

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

func dynamic(f game.Flags, cs ...concept.Concept) ludeme.Traits {
	return ludeme.Traits{Dynamic: true, Flags: f, Concepts: concept.Of(cs...)}
}

// Place puts a piece of component what on a site. With stack unset an
// existing piece is replaced.
type Place struct {
	ludeme.Base
	what  ludeme.IntFunction
	site  ludeme.IntFunction
	stack bool
}

func NewPlace(what, site ludeme.IntFunction, stack bool) *Place {
	var f game.Flags
	if stack {
		f = game.FlagStacking
	}
	return &Place{
		Base:  ludeme.NewBase(dynamic(f, concept.PiecePlacement), what, site),
		what:  what,
		site:  site,
		stack: stack,
	}
}

func (n *Place) Eval(c *game.Context) {
	site := n.site.Eval(c)
	what := n.what.Eval(c)
	comp, ok := c.Game().Component(what)
	if !ok || !c.Board().OnBoard(site) {
		return
	}
	c.Do(game.NewAdd(site, game.Piece{What: what, Who: comp.Owner}, n.stack))
}

func (n *Place) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if n.stack && ludeme.Require(g, g.IsStacking(), n, "stacks pieces in a game without stacking") {
		missing = true
	}
	return missing
}

// Remove takes the top piece off a site, if there is one.
type Remove struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewRemove(site ludeme.IntFunction) *Remove {
	return &Remove{Base: ludeme.NewBase(dynamic(0, concept.PieceRemoval), site), site: site}
}

func (n *Remove) Eval(c *game.Context) {
	site := n.site.Eval(c)
	if c.State().IsEmpty(site) {
		return
	}
	c.Do(game.NewRemove(site, board.Off))
}

// Score adds to or overwrites a player's score.
type Score struct {
	ludeme.Base
	player, amount ludeme.IntFunction
	add            bool
}

func AddScore(player, amount ludeme.IntFunction) *Score {
	return newScore(player, amount, true)
}

func SetScore(player, amount ludeme.IntFunction) *Score {
	return newScore(player, amount, false)
}

func newScore(player, amount ludeme.IntFunction, add bool) *Score {
	return &Score{
		Base:   ludeme.NewBase(dynamic(game.FlagScore, concept.Scoring), player, amount),
		player: player,
		amount: amount,
		add:    add,
	}
}

func (n *Score) Eval(c *game.Context) {
	c.Do(game.NewSetScore(n.player.Eval(c), n.amount.Eval(c), n.add))
}

// SetPiece writes the state or value of the top piece on a site.
type SetPiece struct {
	ludeme.Base
	site, v ludeme.IntFunction
	field   game.PieceField
}

func SetState(site, v ludeme.IntFunction) *SetPiece {
	return &SetPiece{
		Base:  ludeme.NewBase(dynamic(game.FlagSiteState, concept.SiteState), site, v),
		site:  site,
		v:     v,
		field: game.FieldState,
	}
}

func SetValue(site, v ludeme.IntFunction) *SetPiece {
	return &SetPiece{
		Base:  ludeme.NewBase(dynamic(game.FlagPieceValue, concept.PieceValue), site, v),
		site:  site,
		v:     v,
		field: game.FieldValue,
	}
}

func (n *SetPiece) Eval(c *game.Context) {
	site := n.site.Eval(c)
	if c.State().StackSize(site) == 0 {
		return
	}
	v := n.v.Eval(c)
	if n.field == game.FieldState {
		c.Do(game.NewSetState(site, board.Off, v))
		return
	}
	c.Do(game.NewSetValue(site, board.Off, v))
}

// Promote replaces the component of the top piece on a site, keeping its
// owner.
type Promote struct {
	ludeme.Base
	site, what ludeme.IntFunction
}

func NewPromote(site, what ludeme.IntFunction) *Promote {
	return &Promote{
		Base: ludeme.NewBase(dynamic(0, concept.Promotion), site, what),
		site: site,
		what: what,
	}
}

func (n *Promote) Eval(c *game.Context) {
	site := n.site.Eval(c)
	what := n.what.Eval(c)
	if c.State().StackSize(site) == 0 {
		return
	}
	if _, ok := c.Game().Component(what); !ok {
		return
	}
	c.Do(game.NewSetWhat(site, board.Off, what))
}

// SetCounter overwrites the game counter.
type SetCounter struct {
	ludeme.Base
	n ludeme.IntFunction
}

func NewSetCounter(n ludeme.IntFunction) *SetCounter {
	return &SetCounter{Base: ludeme.NewBase(dynamic(game.FlagCounter, concept.Counter), n), n: n}
}

func (e *SetCounter) Eval(c *game.Context) {
	c.Do(game.NewSetCounter(e.n.Eval(c)))
}

// MoveAgain keeps the turn with the mover after the current move.
type MoveAgain struct {
	ludeme.Base
}

func NewMoveAgain() *MoveAgain {
	return &MoveAgain{Base: ludeme.NewBase(dynamic(game.FlagMoveAgain, concept.MoveAgain))}
}

func (n *MoveAgain) Eval(c *game.Context) {
	c.Do(game.NewMoveAgain())
}

// Visit marks a site visited for the rest of the turn.
type Visit struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewVisit(site ludeme.IntFunction) *Visit {
	return &Visit{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Flags:    game.FlagVisited,
			Concepts: concept.Of(concept.Visited),
			Writes:   game.RegistersOf(game.RegVisited),
		}, site),
		site: site,
	}
}

func (n *Visit) Eval(c *game.Context) {
	if site := n.site.Eval(c); c.Board().OnBoard(site) {
		c.Do(game.NewVisit(site))
	}
}
