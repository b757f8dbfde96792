package ints

import (
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// Reg reads one of the integer registers.
type Reg struct {
	ludeme.Base
	reg game.Register
}

func NewReg(r game.Register) *Reg {
	t := ludeme.Traits{Dynamic: true, Reads: game.RegistersOf(r)}
	if r == game.RegFrom {
		t.Flags = game.FlagUsesFrom
	}
	return &Reg{Base: ludeme.NewBase(t), reg: r}
}

func Site() *Reg { return NewReg(game.RegSite) }
func Value() *Reg { return NewReg(game.RegValue) }
func Level() *Reg { return NewReg(game.RegLevel) }
func From() *Reg { return NewReg(game.RegFrom) }
func To() *Reg { return NewReg(game.RegTo) }
func Between() *Reg { return NewReg(game.RegBetween) }
func Player() *Reg { return NewReg(game.RegPlayer) }
func Team() *Reg { return NewReg(game.RegTeam) }

func (n *Reg) Eval(c *game.Context) int { return c.Get(n.reg) }

func (n *Reg) Register() game.Register { return n.reg }
