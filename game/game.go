// Package game holds everything a rule tree is evaluated against: the
// compiled Game with its derived tables, and the mutable Context with its
// State, Trial and scratch registers. Rule nodes live elsewhere and only
// talk to this package through Context and the Rules interface.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/zobrist"
)

var (
	ErrNoBoard       = errors.New("a game needs a board")
	ErrBadNumPlayers = errors.New("number of players must be between 1 and 16")
	ErrBadTeams      = errors.New("teams must assign a positive team to every player")
	ErrBadOwner      = errors.New("component owner out of range")
)

const MaxPlayers = 16

// Component is a piece type. Components are numbered from 1 in the order
// they are declared; 0 means "no piece".
type Component struct {
	Name  string
	Owner int
}

// Rules is the compiled rule tree of a game. It is implemented by the
// rules package; Game only calls through it.
type Rules interface {
	Start(c *Context)
	Moves(c *Context) []*Move
	End(c *Context) (Result, bool)
}

// Options describe the equipment and player setup of a game.
type Options struct {
	Name       string
	Board      *board.Topology
	Components []Component
	NumPlayers int
	// Teams, if set, maps player (index 1..NumPlayers) to team. Index 0
	// is ignored.
	Teams []int
	// Stacking allows more than one piece per site.
	Stacking bool
	// CountMode tracks a piece count per site (mancala-style seeds).
	CountMode bool
}

// Game is a loaded game: the board, equipment and players, the compiled
// rules, and the results of static analysis. It is never mutated during
// play and may be shared by any number of Contexts.
type Game struct {
	name       string
	board      *board.Topology
	components []Component
	numPlayers int
	teams      []int
	stacking   bool
	countMode  bool

	zobrist *zobrist.Zobrist
	rules   Rules

	flags    Flags
	concepts concept.Set
	report   *Report
}

// New validates options and builds a Game without rules.
func New(opts Options) (*Game, error) {
	if opts.Board == nil {
		return nil, ErrNoBoard
	}
	if opts.NumPlayers < 1 || opts.NumPlayers > MaxPlayers {
		return nil, ErrBadNumPlayers
	}
	if opts.Teams != nil {
		if len(opts.Teams) != opts.NumPlayers+1 {
			return nil, ErrBadTeams
		}
		for p := 1; p <= opts.NumPlayers; p++ {
			if opts.Teams[p] <= 0 {
				return nil, ErrBadTeams
			}
		}
	}
	for _, comp := range opts.Components {
		if comp.Owner < 0 || comp.Owner > opts.NumPlayers {
			return nil, fmt.Errorf("%w: %s owned by %d", ErrBadOwner, comp.Name, comp.Owner)
		}
	}
	g := &Game{
		name:       opts.Name,
		board:      opts.Board,
		components: append([]Component(nil), opts.Components...),
		numPlayers: opts.NumPlayers,
		teams:      append([]int(nil), opts.Teams...),
		stacking:   opts.Stacking,
		countMode:  opts.CountMode,
		report:     NewReport(),
	}
	g.zobrist = zobrist.New(opts.Name, opts.Board.NumSites(), len(opts.Components), opts.NumPlayers)
	log.Debug().Str("game", g.name).Str("board", g.board.String()).
		Int("players", g.numPlayers).Int("components", len(g.components)).
		Msg("game-created")
	return g, nil
}

func (g *Game) Name() string { return g.name }
func (g *Game) Board() *board.Topology { return g.board }
func (g *Game) NumPlayers() int { return g.numPlayers }
func (g *Game) IsStacking() bool { return g.stacking }
func (g *Game) IsCountMode() bool { return g.countMode }
func (g *Game) Zobrist() *zobrist.Zobrist { return g.zobrist }
func (g *Game) Report() *Report { return g.report }
func (g *Game) Flags() Flags { return g.flags }
func (g *Game) Concepts() concept.Set { return g.concepts }
func (g *Game) Rules() Rules { return g.rules }
func (g *Game) Components() []Component { return g.components }
func (g *Game) NumComponents() int { return len(g.components) }
func (g *Game) HasTeams() bool { return g.teams != nil }

// Component returns the component with index idx (1-based), and false if
// there is none.
func (g *Game) Component(idx int) (Component, bool) {
	if idx <= 0 || idx > len(g.components) {
		return Component{}, false
	}
	return g.components[idx-1], true
}

// ComponentIndex looks a component up by name. It returns 0 if there is
// no such component.
func (g *Game) ComponentIndex(name string) int {
	for i, c := range g.components {
		if c.Name == name {
			return i + 1
		}
	}
	return 0
}

// Team returns the team of a player. Without teams every player is its
// own team. Out-of-range players are in team Off.
func (g *Game) Team(player int) int {
	if player < 1 || player > g.numPlayers {
		return board.Off
	}
	if g.teams == nil {
		return player
	}
	return g.teams[player]
}

// TeamMembers returns the players of a team in ascending order.
func (g *Game) TeamMembers(team int) []int {
	var out []int
	for p := 1; p <= g.numPlayers; p++ {
		if g.Team(p) == team {
			out = append(out, p)
		}
	}
	return out
}

// NumTeams is the number of distinct teams (players without teams).
func (g *Game) NumTeams() int {
	if g.teams == nil {
		return g.numPlayers
	}
	seen := map[int]bool{}
	for p := 1; p <= g.numPlayers; p++ {
		seen[g.teams[p]] = true
	}
	return len(seen)
}

// Compiled installs the rules and the static analysis results. It is
// called once by the rules compiler before play starts.
func (g *Game) Compiled(r Rules, flags Flags, concepts concept.Set) {
	g.rules = r
	g.flags = flags
	g.concepts = concepts
}

// Moves returns the legal moves in the given context. A finished trial
// has no legal moves.
func (g *Game) Moves(c *Context) []*Move {
	if g.rules == nil || c.trial.Over() {
		return nil
	}
	return g.rules.Moves(c)
}

// NewTrial returns a fresh context with the start rules applied.
func (g *Game) NewTrial(seed uint64) *Context {
	c := g.NewContext(seed)
	if g.rules != nil {
		g.rules.Start(c)
	}
	return c
}
