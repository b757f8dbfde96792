package booleans

import (
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type CanType uint8

const (
	CanMove CanType = iota
	CanMoveAfterVisiting
)

type CanParams struct {
	Moves ludeme.Moves
	// Visit are the sites marked visited before the moves are generated
	// (CanMoveAfterVisiting only).
	Visit []ludeme.IntFunction
}

// CanDispatcher is the entry point of the Can family. It must never be
// evaluated itself.
type CanDispatcher struct {
	ludeme.Base
}

func (d *CanDispatcher) Eval(*game.Context) bool {
	ludeme.Misuse(d, "Eval")
	return false
}

func Can(t CanType, p CanParams) (ludeme.BooleanFunction, error) {
	return (&CanDispatcher{}).Construct(t, p)
}

func (d *CanDispatcher) Construct(t CanType, p CanParams) (ludeme.BooleanFunction, error) {
	if err := ludeme.Required("Can", ludeme.P("moves", p.Moves != nil)); err != nil {
		return nil, err
	}
	switch t {
	case CanMove:
		if len(p.Visit) > 0 {
			return nil, ludeme.Illegal("Can Move", "visit sites are only allowed with MoveAfterVisiting")
		}
		return NewCanMove(p.Moves), nil
	case CanMoveAfterVisiting:
		if err := ludeme.Required("Can MoveAfterVisiting", ludeme.P("visit", len(p.Visit) > 0)); err != nil {
			return nil, err
		}
		return NewCanMoveAfterVisiting(p.Moves, p.Visit...), nil
	}
	return nil, ludeme.Illegal("Can", "unknown type %d", t)
}

// CanMoveNow is true if the generator produces at least one move.
type CanMoveNow struct {
	ludeme.Base
	moves ludeme.Moves
}

func NewCanMove(moves ludeme.Moves) *CanMoveNow {
	return &CanMoveNow{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, moves), moves: moves}
}

func (n *CanMoveNow) Eval(c *game.Context) bool {
	return len(n.moves.Eval(c)) > 0
}

// CanMoveAfterVisit marks sites visited in a fork and asks whether the
// generator still produces a move there. If the generator never looks at
// visited marks, the marking is skipped.
type CanMoveAfterVisit struct {
	ludeme.Base
	moves ludeme.Moves
	sites []ludeme.IntFunction
}

func NewCanMoveAfterVisiting(moves ludeme.Moves, sites ...ludeme.IntFunction) *CanMoveAfterVisit {
	kids := append([]ludeme.Ludeme{moves}, ludeme.Of(sites...)...)
	return &CanMoveAfterVisit{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic: true,
			Flags:   game.FlagVisited,
			Writes:  game.RegistersOf(game.RegVisited),
		}, kids...),
		moves: moves,
		sites: sites,
	}
}

func (n *CanMoveAfterVisit) Eval(c *game.Context) bool {
	sites := make([]int, len(n.sites))
	for i, s := range n.sites {
		sites[i] = s.Eval(c)
	}
	sc, release := ludeme.Scoped(c, game.RegistersOf(game.RegVisited), n.moves)
	defer release()
	if sc != c {
		for _, s := range sites {
			game.NewVisit(s).Apply(sc)
		}
	}
	return len(n.moves.Eval(sc)) > 0
}
