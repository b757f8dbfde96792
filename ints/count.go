package ints

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type CountType uint8

const (
	CountSites CountType = iota
	CountPieces
	CountValue
	CountMoves
	CountTurns
	CountStack
	CountRows
	CountColumns
	CountPlayers
)

type CountParams struct {
	Region ludeme.RegionFunction
	Player ludeme.IntFunction
	Site   ludeme.IntFunction
	// Of is the value counted in Array (CountValue).
	Of    ludeme.IntFunction
	Array ludeme.IntArrayFunction
	Moves ludeme.Moves
}

// CountDispatcher is the entry point of the Count family. It must never
// be evaluated itself.
type CountDispatcher struct {
	ludeme.Base
}

func (d *CountDispatcher) Eval(*game.Context) int {
	ludeme.Misuse(d, "Eval")
	return 0
}

func Count(t CountType, p CountParams) (ludeme.IntFunction, error) {
	return (&CountDispatcher{}).Construct(t, p)
}

func (d *CountDispatcher) Construct(t CountType, p CountParams) (ludeme.IntFunction, error) {
	region := ludeme.P("region", p.Region != nil)
	switch t {
	case CountSites:
		if err := ludeme.Required("Count Sites", region); err != nil {
			return nil, err
		}
		return NewCountSites(p.Region), nil
	case CountPieces:
		if err := ludeme.AtMostOne("Count Pieces", ludeme.P("site", p.Site != nil), region); err != nil {
			return nil, err
		}
		return NewCountPieces(p.Player, p.Region, p.Site), nil
	case CountValue:
		err := ludeme.FirstError(
			ludeme.Required("Count Value", ludeme.P("of", p.Of != nil)),
			ludeme.Required("Count Value", ludeme.P("array", p.Array != nil)),
		)
		if err != nil {
			return nil, err
		}
		return NewCountValue(p.Of, p.Array), nil
	case CountMoves:
		return NewCountMoves(p.Moves), nil
	case CountTurns:
		return NewCountTurns(), nil
	case CountStack:
		if err := ludeme.Required("Count Stack", ludeme.P("site", p.Site != nil)); err != nil {
			return nil, err
		}
		return NewCountStack(p.Site), nil
	case CountRows:
		return NewCountDims(false), nil
	case CountColumns:
		return NewCountDims(true), nil
	case CountPlayers:
		return NewNumPlayers(), nil
	}
	return nil, ludeme.Illegal("Count", "unknown type %d", t)
}

type CountSitesIn struct {
	ludeme.Base
	region ludeme.RegionFunction
	folded ludeme.Cell[int]
}

func NewCountSites(region ludeme.RegionFunction) *CountSitesIn {
	return &CountSitesIn{Base: ludeme.NewBase(ludeme.Traits{}, region), region: region}
}

func (n *CountSitesIn) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *CountSitesIn) eval(c *game.Context) int {
	return n.region.Eval(c).Count()
}

func (n *CountSitesIn) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// CountPiecesOf counts the pieces (all stack levels) owned by a player,
// or by anyone without one, optionally restricted to a region or a site.
type CountPiecesOf struct {
	ludeme.Base
	player ludeme.IntFunction
	region ludeme.RegionFunction
	site   ludeme.IntFunction
}

func NewCountPieces(player ludeme.IntFunction, region ludeme.RegionFunction, site ludeme.IntFunction) *CountPiecesOf {
	return &CountPiecesOf{
		Base:   ludeme.NewBase(ludeme.Traits{Dynamic: true}, player, region, site),
		player: player,
		region: region,
		site:   site,
	}
}

func (n *CountPiecesOf) Eval(c *game.Context) int {
	who := 0
	if n.player != nil {
		who = n.player.Eval(c)
	}
	s := c.State()
	if n.region == nil && n.site == nil {
		return s.PieceCount(who)
	}
	var sites []int
	if n.site != nil {
		sites = []int{n.site.Eval(c)}
	} else {
		sites = n.region.Eval(c).Sites()
	}
	total := 0
	for _, site := range sites {
		for lvl := 0; lvl < s.StackSize(site); lvl++ {
			if who == 0 || s.WhoAt(site, lvl) == who {
				total++
			}
		}
	}
	return total
}

// CountValueIn counts the occurrences of a value in an array.
type CountValueIn struct {
	ludeme.Base
	of     ludeme.IntFunction
	array  ludeme.IntArrayFunction
	folded ludeme.Cell[int]
}

func NewCountValue(of ludeme.IntFunction, array ludeme.IntArrayFunction) *CountValueIn {
	return &CountValueIn{Base: ludeme.NewBase(ludeme.Traits{}, of, array), of: of, array: array}
}

func (n *CountValueIn) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *CountValueIn) eval(c *game.Context) int {
	v := n.of.Eval(c)
	count := 0
	for _, x := range n.array.Eval(c) {
		if x == v {
			count++
		}
	}
	return count
}

func (n *CountValueIn) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// CountLegalMoves counts the moves of a generator, or of the game's play
// rules without one.
type CountLegalMoves struct {
	ludeme.Base
	moves ludeme.Moves
}

func NewCountMoves(moves ludeme.Moves) *CountLegalMoves {
	return &CountLegalMoves{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, moves), moves: moves}
}

func (n *CountLegalMoves) Eval(c *game.Context) int {
	if n.moves != nil {
		return len(n.moves.Eval(c))
	}
	rules := c.Game().Rules()
	if rules == nil {
		return 0
	}
	return len(rules.Moves(c))
}

type CountTurnsTaken struct {
	ludeme.Base
}

func NewCountTurns() *CountTurnsTaken {
	return &CountTurnsTaken{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true})}
}

func (n *CountTurnsTaken) Eval(c *game.Context) int { return c.Trial().NumTurns() }

// CountStackAt is the number of pieces on a site: the stack height, or
// the tracked count in count mode.
type CountStackAt struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewCountStack(site ludeme.IntFunction) *CountStackAt {
	return &CountStackAt{
		Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(concept.CountPieces)}, site),
		site: site,
	}
}

func (n *CountStackAt) Eval(c *game.Context) int {
	return c.State().Count(n.site.Eval(c))
}

func (n *CountStackAt) GameFlags(g *game.Game) game.Flags {
	f := n.Base.GameFlags(g)
	if g.IsCountMode() {
		return f | game.FlagCount
	}
	return f | game.FlagStacking
}

func (n *CountStackAt) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.IsStacking() || g.IsCountMode(), n, "counts a stack in a game with one piece per site") {
		missing = true
	}
	return missing
}

// CountDims is the number of rows or columns of the board.
type CountDims struct {
	ludeme.Base
	columns bool
	folded  ludeme.Cell[int]
}

func NewCountDims(columns bool) *CountDims {
	return &CountDims{Base: ludeme.NewBase(ludeme.Traits{}), columns: columns}
}

func (n *CountDims) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *CountDims) eval(c *game.Context) int {
	if n.columns {
		return c.Board().Columns()
	}
	return c.Board().Rows()
}

func (n *CountDims) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }
