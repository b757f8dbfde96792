package booleans

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type NoType uint8

const (
	NoMoves NoType = iota
	NoPieces
)

type NoParams struct {
	// Player defaults to the mover.
	Player ludeme.IntFunction
	// Moves defaults to the game's play rules (NoMoves only).
	Moves ludeme.Moves
}

// NoDispatcher is the entry point of the No family. It must never be
// evaluated itself.
type NoDispatcher struct {
	ludeme.Base
}

func (d *NoDispatcher) Eval(*game.Context) bool {
	ludeme.Misuse(d, "Eval")
	return false
}

func No(t NoType, p NoParams) (ludeme.BooleanFunction, error) {
	return (&NoDispatcher{}).Construct(t, p)
}

func (d *NoDispatcher) Construct(t NoType, p NoParams) (ludeme.BooleanFunction, error) {
	switch t {
	case NoMoves:
		return NewNoMoves(p.Player, p.Moves), nil
	case NoPieces:
		if p.Moves != nil {
			return nil, ludeme.Illegal("No Pieces", "takes no moves")
		}
		return NewNoPieces(p.Player), nil
	}
	return nil, ludeme.Illegal("No", "unknown type %d", t)
}

// NoLegalMoves is true if the player would have no move. The moves are
// generated in a fork where that player is the mover.
type NoLegalMoves struct {
	ludeme.Base
	player ludeme.IntFunction
	moves  ludeme.Moves
}

func NewNoMoves(player ludeme.IntFunction, moves ludeme.Moves) *NoLegalMoves {
	return &NoLegalMoves{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.NoMoves),
		}, player, moves),
		player: player,
		moves:  moves,
	}
}

func (n *NoLegalMoves) Eval(c *game.Context) bool {
	p := c.Mover()
	if n.player != nil {
		p = n.player.Eval(c)
	}
	fc := c.ForkAs(p)
	if n.moves != nil {
		return len(n.moves.Eval(fc)) == 0
	}
	rules := c.Game().Rules()
	if rules == nil {
		return true
	}
	return len(rules.Moves(fc)) == 0
}

type NoPiecesLeft struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewNoPieces(player ludeme.IntFunction) *NoPiecesLeft {
	return &NoPiecesLeft{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Concepts: concept.Of(concept.NoPieces),
		}, player),
		player: player,
	}
}

func (n *NoPiecesLeft) Eval(c *game.Context) bool {
	p := c.Mover()
	if n.player != nil {
		p = n.player.Eval(c)
	}
	return c.State().PieceCount(p) == 0
}

// WasPass is true if the previous move was a pass.
type WasPass struct {
	ludeme.Base
}

func NewWasPass() *WasPass {
	return &WasPass{Base: ludeme.NewBase(ludeme.Traits{
		Dynamic:  true,
		Flags:    game.FlagLastMove,
		Concepts: concept.Of(concept.PassMove),
	})}
}

func (n *WasPass) Eval(c *game.Context) bool {
	m := c.Trial().LastMove()
	return m != nil && m.IsPass()
}
