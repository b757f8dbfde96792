package booleans

import (
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// IsType selects a variant of the Is family.
type IsType uint8

const (
	IsEmpty IsType = iota
	IsOccupied
	IsFriend
	IsEnemy
	IsIn
	IsVisited
	IsRepeat
	IsEven
	IsOdd
	IsActive
	IsMover
)

// RepetitionType selects which recorded hashes a repetition check uses.
type RepetitionType uint8

const (
	RepeatPositional RepetitionType = iota
	RepeatSituational
	RepeatPositionalInTurn
	RepeatSituationalInTurn
)

// IsParams are the optional arguments of the Is family. Which ones are
// needed depends on the type.
type IsParams struct {
	Site       ludeme.IntFunction
	Value      ludeme.IntFunction
	Player     ludeme.IntFunction
	Region     ludeme.RegionFunction
	Array      ludeme.IntArrayFunction
	Repetition RepetitionType
}

// IsDispatcher is the entry point of the Is family. It only constructs
// the concrete predicates and must never be evaluated itself.
type IsDispatcher struct {
	ludeme.Base
}

func (d *IsDispatcher) Eval(*game.Context) bool {
	ludeme.Misuse(d, "Eval")
	return false
}

// Is builds the predicate of the given type.
func Is(t IsType, p IsParams) (ludeme.BooleanFunction, error) {
	return (&IsDispatcher{}).Construct(t, p)
}

func (d *IsDispatcher) Construct(t IsType, p IsParams) (ludeme.BooleanFunction, error) {
	site := ludeme.P("site", p.Site != nil)
	value := ludeme.P("value", p.Value != nil)
	player := ludeme.P("player", p.Player != nil)
	switch t {
	case IsEmpty, IsOccupied, IsVisited:
		if err := ludeme.Required("Is", site); err != nil {
			return nil, err
		}
		switch t {
		case IsEmpty:
			return NewIsEmpty(p.Site), nil
		case IsOccupied:
			return NewIsOccupied(p.Site), nil
		}
		return NewIsVisited(p.Site), nil
	case IsFriend, IsEnemy, IsActive, IsMover:
		if err := ludeme.Required("Is", player); err != nil {
			return nil, err
		}
		switch t {
		case IsFriend:
			return NewIsFriend(p.Player), nil
		case IsEnemy:
			return NewIsEnemy(p.Player), nil
		case IsActive:
			return NewIsActive(p.Player), nil
		}
		return NewIsMover(p.Player), nil
	case IsIn:
		err := ludeme.FirstError(
			ludeme.ExactlyOne("Is In", site, value),
			ludeme.ExactlyOne("Is In", ludeme.P("region", p.Region != nil), ludeme.P("array", p.Array != nil)),
		)
		if err != nil {
			return nil, err
		}
		x := p.Site
		if x == nil {
			x = p.Value
		}
		if p.Region != nil {
			return NewIsInRegion(x, p.Region), nil
		}
		return NewIsInArray(x, p.Array), nil
	case IsRepeat:
		if p.Site != nil || p.Value != nil || p.Player != nil {
			return nil, ludeme.Illegal("Is Repeat", "takes no site, value or player")
		}
		return NewIsRepeat(p.Repetition), nil
	case IsEven, IsOdd:
		if err := ludeme.Required("Is", value); err != nil {
			return nil, err
		}
		return NewIsParity(p.Value, t == IsOdd), nil
	}
	return nil, ludeme.Illegal("Is", "unknown type %d", t)
}

// IsEmptySite is true for an on-board site with no pieces.
type IsEmptySite struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewIsEmpty(site ludeme.IntFunction) *IsEmptySite {
	return &IsEmptySite{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, site), site: site}
}

func (n *IsEmptySite) Eval(c *game.Context) bool {
	s := n.site.Eval(c)
	return c.Board().OnBoard(s) && c.State().IsEmpty(s)
}

type IsOccupiedSite struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewIsOccupied(site ludeme.IntFunction) *IsOccupiedSite {
	return &IsOccupiedSite{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, site), site: site}
}

func (n *IsOccupiedSite) Eval(c *game.Context) bool {
	s := n.site.Eval(c)
	return c.Board().OnBoard(s) && !c.State().IsEmpty(s)
}

// IsFriendOf is true if the player is on the mover's team. Player 0 (no
// owner) is nobody's friend.
type IsFriendOf struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewIsFriend(player ludeme.IntFunction) *IsFriendOf {
	return &IsFriendOf{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, player), player: player}
}

func (n *IsFriendOf) Eval(c *game.Context) bool {
	p := n.player.Eval(c)
	if p < 1 {
		return false
	}
	g := c.Game()
	return g.Team(p) == g.Team(c.Mover())
}

type IsEnemyOf struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewIsEnemy(player ludeme.IntFunction) *IsEnemyOf {
	return &IsEnemyOf{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, player), player: player}
}

func (n *IsEnemyOf) Eval(c *game.Context) bool {
	p := n.player.Eval(c)
	if p < 1 || p > c.Game().NumPlayers() {
		return false
	}
	g := c.Game()
	return g.Team(p) != g.Team(c.Mover())
}

type IsInRegion struct {
	ludeme.Base
	site   ludeme.IntFunction
	region ludeme.RegionFunction
	folded ludeme.Cell[bool]
}

func NewIsInRegion(site ludeme.IntFunction, region ludeme.RegionFunction) *IsInRegion {
	return &IsInRegion{Base: ludeme.NewBase(ludeme.Traits{}, site, region), site: site, region: region}
}

func (n *IsInRegion) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *IsInRegion) eval(c *game.Context) bool {
	return n.region.Eval(c).Contains(n.site.Eval(c))
}

func (n *IsInRegion) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

type IsInArray struct {
	ludeme.Base
	value  ludeme.IntFunction
	array  ludeme.IntArrayFunction
	folded ludeme.Cell[bool]
}

func NewIsInArray(value ludeme.IntFunction, array ludeme.IntArrayFunction) *IsInArray {
	return &IsInArray{Base: ludeme.NewBase(ludeme.Traits{}, value, array), value: value, array: array}
}

func (n *IsInArray) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *IsInArray) eval(c *game.Context) bool {
	v := n.value.Eval(c)
	for _, x := range n.array.Eval(c) {
		if x == v {
			return true
		}
	}
	return false
}

func (n *IsInArray) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// IsVisitedSite reads the per-turn visited marks.
type IsVisitedSite struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewIsVisited(site ludeme.IntFunction) *IsVisitedSite {
	return &IsVisitedSite{
		Base: ludeme.NewBase(ludeme.Traits{
			Dynamic:  true,
			Flags:    game.FlagVisited,
			Concepts: concept.Of(concept.Visited),
			Reads:    game.RegistersOf(game.RegVisited),
		}, site),
		site: site,
	}
}

func (n *IsVisitedSite) Eval(c *game.Context) bool {
	return c.State().Visited(n.site.Eval(c))
}

// IsRepeatState is true if the live state was already seen, according to
// the repetition type.
type IsRepeatState struct {
	ludeme.Base
	kind RepetitionType
}

func NewIsRepeat(kind RepetitionType) *IsRepeatState {
	t := ludeme.Traits{Dynamic: true}
	switch kind {
	case RepeatPositional, RepeatPositionalInTurn:
		t.Flags = game.FlagRepeatPositional
		t.Concepts = concept.Of(concept.Repetition, concept.PositionalRepetition)
	default:
		t.Flags = game.FlagRepeatSituational
		t.Concepts = concept.Of(concept.Repetition, concept.SituationalRepetition)
	}
	return &IsRepeatState{Base: ludeme.NewBase(t), kind: kind}
}

func (n *IsRepeatState) Eval(c *game.Context) bool {
	s, t := c.State(), c.Trial()
	switch n.kind {
	case RepeatPositional:
		return t.HasPositional(s.Hash())
	case RepeatSituational:
		return t.HasSituational(s.FullHash())
	case RepeatPositionalInTurn:
		return t.HasPositionalInTurn(s.Hash())
	case RepeatSituationalInTurn:
		return t.HasSituationalInTurn(s.FullHash())
	}
	return false
}

type IsParity struct {
	ludeme.Base
	value  ludeme.IntFunction
	odd    bool
	folded ludeme.Cell[bool]
}

func NewIsParity(value ludeme.IntFunction, odd bool) *IsParity {
	return &IsParity{Base: ludeme.NewBase(ludeme.Traits{}, value), value: value, odd: odd}
}

func (n *IsParity) Eval(c *game.Context) bool {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *IsParity) eval(c *game.Context) bool {
	odd := n.value.Eval(c)%2 != 0
	return odd == n.odd
}

func (n *IsParity) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

type IsActivePlayer struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewIsActive(player ludeme.IntFunction) *IsActivePlayer {
	return &IsActivePlayer{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, player), player: player}
}

func (n *IsActivePlayer) Eval(c *game.Context) bool {
	return c.State().Active(n.player.Eval(c))
}

type IsMoverPlayer struct {
	ludeme.Base
	player ludeme.IntFunction
}

func NewIsMover(player ludeme.IntFunction) *IsMoverPlayer {
	return &IsMoverPlayer{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true}, player), player: player}
}

func (n *IsMoverPlayer) Eval(c *game.Context) bool {
	p := n.player.Eval(c)
	return p != board.Off && p == c.Mover()
}
