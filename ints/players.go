package ints

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Role names a player relative to the turn order.
type Role uint8

const (
	RoleMover Role = iota
	RoleNext
	RolePrev
)

type RoleOf struct {
	ludeme.Base
	role Role
}

func newRole(r Role) *RoleOf {
	return &RoleOf{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}), role: r}
}

func Mover() *RoleOf { return newRole(RoleMover) }
func Next() *RoleOf { return newRole(RoleNext) }
func Prev() *RoleOf { return newRole(RolePrev) }

func (n *RoleOf) Eval(c *game.Context) int {
	s := c.State()
	switch n.role {
	case RoleNext:
		return s.Next()
	case RolePrev:
		return s.Prev()
	}
	return s.Mover()
}

// PlayerConst is a fixed player index. It is a missing requirement if the
// game has fewer players.
type PlayerConst struct {
	ludeme.Base
	p int
}

func NewPlayer(p int) *PlayerConst {
	return &PlayerConst{Base: ludeme.NewBase(ludeme.Traits{}), p: p}
}

func (n *PlayerConst) Eval(*game.Context) int { return n.p }

func (n *PlayerConst) MissingRequirement(g *game.Game) bool {
	return ludeme.Require(g, n.p >= 1 && n.p <= g.NumPlayers(), n, "player out of range")
}

type NumPlayers struct {
	ludeme.Base
	folded ludeme.Cell[int]
}

func NewNumPlayers() *NumPlayers {
	return &NumPlayers{Base: ludeme.NewBase(ludeme.Traits{})}
}

func (n *NumPlayers) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return c.Game().NumPlayers()
}

func (n *NumPlayers) Preprocess(g *game.Game) {
	ludeme.Fold(g, n, &n.folded, func(c *game.Context) int { return c.Game().NumPlayers() })
}

// TeamOf is the team of a player.
type TeamOf struct {
	ludeme.Base
	player ludeme.IntFunction
	folded ludeme.Cell[int]
}

func NewTeamOf(player ludeme.IntFunction) *TeamOf {
	return &TeamOf{
		Base:   ludeme.NewBase(ludeme.Traits{Flags: game.FlagTeam, Concepts: concept.Of(concept.Team)}, player),
		player: player,
	}
}

func (n *TeamOf) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *TeamOf) eval(c *game.Context) int {
	return c.Game().Team(n.player.Eval(c))
}

func (n *TeamOf) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

type Score struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewScore(player ludeme.IntFunction) *Score {
	return &Score{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Flags:    game.FlagScore,
			Concepts: concept.Of(concept.Scoring),
		}, player),
		player: player,
	}
}

func (n *Score) Eval(c *game.Context) int {
	return c.State().Score(n.player.Eval(c))
}

type Counter struct {
	ludeme.Base
}

func NewCounter() *Counter {
	return &Counter{Base: ludeme.NewBase(ludeme.Traits{
		Dynamic:  true,
		Flags:    game.FlagCounter,
		Concepts: concept.Of(concept.Counter),
	})}
}

func (n *Counter) Eval(c *game.Context) int { return c.State().Counter() }

// LastSite is the from or to site of the previous move, or board.Off.
type LastSite struct {
	ludeme.Base
	to bool
}

func newLastSite(to bool) *LastSite {
	return &LastSite{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Flags: game.FlagLastMove}), to: to}
}

func LastFrom() *LastSite { return newLastSite(false) }
func LastTo() *LastSite { return newLastSite(true) }

func (n *LastSite) Eval(c *game.Context) int {
	m := c.Trial().LastMove()
	if m == nil {
		return board.Off
	}
	if n.to {
		return m.To()
	}
	return m.From()
}
