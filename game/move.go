package game

import (
	"fmt"
	"strings"

	"github.com/domino14/ludeme/board"
)

// MoveType is a coarse classification of a move, used for display and by
// rules that look at the previous move.
type MoveType uint8

const (
	MoveAdd MoveType = iota
	MoveRemove
	MoveStep
	MoveSlide
	MoveHop
	MovePass
	MoveOther
)

var moveTypeNames = [...]string{"add", "remove", "step", "slide", "hop", "pass", "other"}

func (t MoveType) String() string {
	if int(t) < len(moveTypeNames) {
		return moveTypeNames[t]
	}
	return "unknown"
}

// A Consequence runs after a move's own actions, against the post-move
// state, with the From and To registers bound to the move. Effect nodes
// satisfy it.
type Consequence interface {
	Eval(c *Context)
}

// Move is a candidate or applied move: the actions it performs plus the
// consequences evaluated after them. A Move must only be applied to one
// Context at a time.
type Move struct {
	mtype   MoveType
	mover   int
	from    int
	to      int
	what    int
	actions []Action
	then    []Consequence

	// Filled in by Context.Apply, consumed by Context.Undo.
	applied      []Action
	turnSwitched bool
	posInTurn    []uint64
	sitInTurn    []uint64
}

// NewMove creates a move. from and to may be board.Off when the move has
// no such site.
func NewMove(mtype MoveType, mover, from, to int, actions ...Action) *Move {
	return &Move{
		mtype:   mtype,
		mover:   mover,
		from:    from,
		to:      to,
		actions: actions,
	}
}

// NewPassMove is a move that does nothing but hand the turn over.
func NewPassMove(mover int) *Move {
	return NewMove(MovePass, mover, board.Off, board.Off, Pass{})
}

// WithWhat records the component the move places or moves.
func (m *Move) WithWhat(what int) *Move {
	m.what = what
	return m
}

// WithThen appends consequences to the move.
func (m *Move) WithThen(cs ...Consequence) *Move {
	m.then = append(m.then, cs...)
	return m
}

func (m *Move) Type() MoveType { return m.mtype }
func (m *Move) Mover() int { return m.mover }
func (m *Move) From() int { return m.from }
func (m *Move) To() int { return m.to }
func (m *Move) What() int { return m.what }
func (m *Move) IsPass() bool { return m.mtype == MovePass }
func (m *Move) Actions() []Action { return m.actions }
func (m *Move) Then() []Consequence { return m.then }

// Applied returns the actions performed the last time the move was
// applied, consequences included.
func (m *Move) Applied() []Action {
	return m.applied
}

// ShortDescription is a compact human-readable form of the move.
func (m *Move) ShortDescription() string {
	switch m.mtype {
	case MovePass:
		return "pass"
	case MoveAdd:
		return fmt.Sprintf("add %d", m.to)
	case MoveRemove:
		return fmt.Sprintf("remove %d", m.to)
	}
	if m.from == board.Off {
		return fmt.Sprintf("%s %d", m.mtype, m.to)
	}
	return fmt.Sprintf("%s %d-%d", m.mtype, m.from, m.to)
}

func (m *Move) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P%d %s", m.mover, m.ShortDescription())
	if len(m.actions) > 0 {
		names := make([]string, len(m.actions))
		for i, a := range m.actions {
			names[i] = a.String()
		}
		fmt.Fprintf(&sb, " [%s]", strings.Join(names, " "))
	}
	if len(m.then) > 0 {
		fmt.Fprintf(&sb, " +%d then", len(m.then))
	}
	return sb.String()
}
