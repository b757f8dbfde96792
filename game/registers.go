package game

import (
	"strings"

	"github.com/domino14/ludeme/board"
)

// Register names one of the scratch slots of a Context. Registers carry
// implicit arguments ("the site under consideration") down through nested
// rule evaluation.
type Register uint8

const (
	RegSite Register = iota
	RegValue
	RegLevel
	RegFrom
	RegTo
	RegBetween
	RegPlayer
	RegTeam
	RegRegion
	// RegVisited is the per-turn visited marks. It lives in the State, not
	// in the flat register frame, so it cannot be saved and restored
	// cheaply; rebinding it needs a fork.
	RegVisited

	numRegisters
)

var registerNames = [numRegisters]string{
	"Site", "Value", "Level", "From", "To", "Between", "Player", "Team", "Region", "Visited",
}

func (r Register) String() string {
	if r >= numRegisters {
		return "Unknown"
	}
	return registerNames[r]
}

// RegisterSet is a footprint: a set of registers read or written.
type RegisterSet uint16

// RegistersOf builds a footprint from individual registers.
func RegistersOf(rs ...Register) RegisterSet {
	var s RegisterSet
	for _, r := range rs {
		s |= 1 << r
	}
	return s
}

// StateBacked are the registers that live outside the flat frame.
var StateBacked = RegistersOf(RegVisited)

func (s RegisterSet) Has(r Register) bool {
	return s&(1<<r) != 0
}

func (s RegisterSet) Intersects(o RegisterSet) bool {
	return s&o != 0
}

func (s RegisterSet) IsEmpty() bool {
	return s == 0
}

func (s RegisterSet) List() []Register {
	var out []Register
	for r := Register(0); r < numRegisters; r++ {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s RegisterSet) String() string {
	var names []string
	for _, r := range s.List() {
		names = append(names, r.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

// Registers is a snapshot of the flat register frame. It is comparable,
// so two snapshots can be checked for equality with ==.
type Registers struct {
	Site    int
	Value   int
	Level   int
	From    int
	To      int
	Between int
	Player  int
	Team    int
	Region  board.Region
}

// DefaultRegisters has every integer register undefined.
func DefaultRegisters() Registers {
	return Registers{
		Site:    board.Off,
		Value:   board.Off,
		Level:   board.Off,
		From:    board.Off,
		To:      board.Off,
		Between: board.Off,
		Player:  board.Off,
		Team:    board.Off,
	}
}

func (r *Registers) get(reg Register) int {
	switch reg {
	case RegSite:
		return r.Site
	case RegValue:
		return r.Value
	case RegLevel:
		return r.Level
	case RegFrom:
		return r.From
	case RegTo:
		return r.To
	case RegBetween:
		return r.Between
	case RegPlayer:
		return r.Player
	case RegTeam:
		return r.Team
	}
	return board.Off
}

func (r *Registers) set(reg Register, v int) {
	switch reg {
	case RegSite:
		r.Site = v
	case RegValue:
		r.Value = v
	case RegLevel:
		r.Level = v
	case RegFrom:
		r.From = v
	case RegTo:
		r.To = v
	case RegBetween:
		r.Between = v
	case RegPlayer:
		r.Player = v
	case RegTeam:
		r.Team = v
	}
}
