package game

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/ludeme/board"
)

// Isolation selects what a forked Context keeps to itself. Everything
// not isolated is shared with the parent by reference.
type Isolation uint8

const (
	// IsolateRegisters gives the fork its own register frame only.
	IsolateRegisters Isolation = iota
	// IsolateVisited also gives the fork its own per-turn visited marks.
	IsolateVisited
	// IsolateState gives the fork a deep copy of the state and trial, so
	// moves can be applied to it hypothetically.
	IsolateState
)

// Context is the mutable handle every rule evaluates against. It is not
// safe for concurrent use; give every goroutine its own.
type Context struct {
	game   *Game
	state  *State
	trial  *Trial
	rng    *frand.RNG
	regs   Registers
	parent *Context

	// recording is the move whose actions are being applied, if any.
	recording *Move
}

func newRNG(seed uint64) *frand.RNG {
	buf := make([]byte, 32)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], seed+uint64(i)*0x9e3779b97f4a7c15)
	}
	return frand.NewCustom(buf, 1024, 12)
}

// NewContext returns an empty context: empty board, no history, default
// registers. Start rules are not applied; see NewTrial.
func (g *Game) NewContext(seed uint64) *Context {
	return &Context{
		game:  g,
		state: newState(g),
		trial: newTrial(),
		rng:   newRNG(seed),
		regs:  DefaultRegisters(),
	}
}

// NewNestedContext is NewContext for a sub-game played inside parent.
func (g *Game) NewNestedContext(parent *Context, seed uint64) *Context {
	c := g.NewContext(seed)
	c.parent = parent
	return c
}

// NewPlaceholderContext is the context static rules are folded against:
// no history, default registers, an empty board.
func NewPlaceholderContext(g *Game) *Context {
	return g.NewContext(0)
}

func (c *Context) Game() *Game { return c.game }
func (c *Context) State() *State { return c.state }
func (c *Context) Trial() *Trial { return c.trial }
func (c *Context) RNG() *frand.RNG { return c.rng }
func (c *Context) Board() *board.Topology { return c.game.board }

// Parent is the enclosing context of a nested sub-game, or nil. It must
// only be read.
func (c *Context) Parent() *Context { return c.parent }

func (c *Context) Site() int { return c.regs.Site }
func (c *Context) Value() int { return c.regs.Value }
func (c *Context) Level() int { return c.regs.Level }
func (c *Context) From() int { return c.regs.From }
func (c *Context) To() int { return c.regs.To }
func (c *Context) Between() int { return c.regs.Between }
func (c *Context) Player() int { return c.regs.Player }
func (c *Context) Team() int { return c.regs.Team }
func (c *Context) Region() board.Region { return c.regs.Region }

// Get reads an integer register. RegRegion and RegVisited are not
// integers and read as board.Off.
func (c *Context) Get(r Register) int {
	return c.regs.get(r)
}

// Set overwrites an integer register. Prefer Bind, which hands back the
// restore function.
func (c *Context) Set(r Register, v int) {
	c.regs.set(r, v)
}

func (c *Context) SetRegion(r board.Region) {
	c.regs.Region = r
}

// Bind sets an integer register and returns a function that puts the
// previous value back:
//
//	restore := c.Bind(game.RegSite, site)
//	defer restore()
func (c *Context) Bind(r Register, v int) func() {
	old := c.regs.get(r)
	c.regs.set(r, v)
	return func() { c.regs.set(r, old) }
}

// BindRegion is Bind for the region register.
func (c *Context) BindRegion(reg board.Region) func() {
	old := c.regs.Region
	c.regs.Region = reg
	return func() { c.regs.Region = old }
}

// Registers returns a snapshot of the flat register frame.
func (c *Context) Registers() Registers {
	return c.regs
}

// SetRegisters restores a snapshot taken with Registers.
func (c *Context) SetRegisters(r Registers) {
	c.regs = r
}

// Fork returns a derived context for hypothetical evaluation. The fork
// copies the registers and isolates what iso names; the rest is shared.
// A fork never records into the move being applied by its parent.
func (c *Context) Fork(iso Isolation) *Context {
	f := &Context{
		game:   c.game,
		state:  c.state,
		trial:  c.trial,
		rng:    c.rng,
		regs:   c.regs,
		parent: c.parent,
	}
	switch iso {
	case IsolateVisited:
		st := *c.state
		st.visited = append([]bool(nil), c.state.visited...)
		f.state = &st
	case IsolateState:
		f.state = c.state.deepCopy()
		f.trial = c.trial.clone()
	}
	return f
}

// ForkAs returns a register fork in which player is the mover. The board
// is shared, so it is only fit for generating moves, not applying them.
func (c *Context) ForkAs(player int) *Context {
	f := c.Fork(IsolateRegisters)
	if player < 1 || player > c.state.numPlayers || player == c.state.mover {
		return f
	}
	st := *c.state
	st.prev = c.state.mover
	st.mover = player
	st.next = st.nextActiveAfter(player)
	f.state = &st
	return f
}

// Do applies an action and, if a move is being applied, records it so
// Undo can revert it.
func (c *Context) Do(a Action) {
	a.Apply(c)
	if c.recording != nil {
		c.recording.applied = append(c.recording.applied, a)
	}
}

// Mover is the player whose turn it is.
func (c *Context) Mover() int {
	return c.state.mover
}

// Moves returns the legal moves in this context.
func (c *Context) Moves() []*Move {
	return c.game.Moves(c)
}

// Apply plays a move: it records the pre-move hashes, performs the
// move's actions and consequences, checks the end rules and advances the
// turn unless the move asked to move again.
func (c *Context) Apply(m *Move) {
	s, t := c.state, c.trial
	m.applied = m.applied[:0]
	m.turnSwitched = false
	m.posInTurn, m.sitInTurn = nil, nil

	t.RecordState(s.Hash(), s.FullHash())

	prev := c.recording
	c.recording = m
	defer func() { c.recording = prev }()

	for _, a := range m.actions {
		c.Do(a)
	}
	if len(m.then) > 0 {
		saved := c.regs
		c.regs.From, c.regs.To = m.from, m.to
		for _, q := range m.then {
			q.Eval(c)
		}
		c.regs = saved
	}
	t.moves = append(t.moves, m)

	if rules := c.game.rules; rules != nil {
		if res, over := rules.End(c); over {
			c.Do(&end{result: res})
			log.Debug().Str("game", c.game.name).Int("moves", len(t.moves)).
				Str("result", res.String()).Msg("trial-over")
			return
		}
	}
	if s.moveAgain {
		c.Do(&clearMoveAgain{})
		return
	}
	c.Do(&nextTurn{})
	m.turnSwitched = true
	m.posInTurn, m.sitInTurn = t.positionalInTurn, t.situationalInTurn
	t.positionalInTurn, t.situationalInTurn = nil, nil
}

// Undo reverts the last applied move and returns it, or nil if there is
// nothing to undo.
func (c *Context) Undo() *Move {
	t := c.trial
	n := len(t.moves)
	if n == 0 {
		return nil
	}
	m := t.moves[n-1]
	t.moves[n-1] = nil
	t.moves = t.moves[:n-1]
	for i := len(m.applied) - 1; i >= 0; i-- {
		m.applied[i].Undo(c)
	}
	if m.turnSwitched {
		t.positionalInTurn, t.situationalInTurn = m.posInTurn, m.sitInTurn
	}
	t.unrecordState()
	return m
}
