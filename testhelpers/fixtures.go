package testhelpers

import (
	"testing"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/game"
)

// NewGame builds a game for tests. A nil board is a 3x3 square, zero
// players means two, and without components each player gets one disc.
func NewGame(tb testing.TB, o game.Options) *game.Game {
	tb.Helper()
	if o.Board == nil {
		b, err := board.NewSquare(3)
		if err != nil {
			tb.Fatal(err)
		}
		o.Board = b
	}
	if o.NumPlayers == 0 {
		o.NumPlayers = 2
	}
	if o.Name == "" {
		o.Name = tb.Name()
	}
	if o.Components == nil {
		for p := 1; p <= o.NumPlayers; p++ {
			o.Components = append(o.Components, game.Component{Name: "Disc" + string(rune('0'+p)), Owner: p})
		}
	}
	g, err := game.New(o)
	if err != nil {
		tb.Fatal(err)
	}
	return g
}

// Put places a piece of player who (component who) on a site.
func Put(c *game.Context, site, who int, stack bool) {
	c.Do(game.NewAdd(site, game.Piece{What: who, Who: who}, stack))
}
