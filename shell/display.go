package shell

import (
	"fmt"
	"strings"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/game"
)

var ownerGlyphs = ".XOABCDEFGHIJKLMN"

func glyph(s *game.State, site int) string {
	if s.IsEmpty(site) {
		return "."
	}
	who := s.Who(site)
	g := "?"
	if who >= 0 && who < len(ownerGlyphs) {
		g = string(ownerGlyphs[who])
	}
	if n := s.Count(site); n > 1 {
		g += fmt.Sprint(n)
	}
	return g
}

// renderState draws grids top row first, with site numbers down the
// left; graph boards are listed site by site.
func renderState(c *game.Context) string {
	var sb strings.Builder
	b := c.Board()
	s := c.State()
	if b.Kind() == board.KindGrid {
		for r := b.Rows() - 1; r >= 0; r-- {
			fmt.Fprintf(&sb, "%4d ", r*b.Columns())
			for col := 0; col < b.Columns(); col++ {
				fmt.Fprintf(&sb, " %-2s", glyph(s, r*b.Columns()+col))
			}
			sb.WriteString("\n")
		}
	} else {
		for site := 0; site < b.NumSites(); site++ {
			fmt.Fprintf(&sb, "%4d: %s\n", site, glyph(s, site))
		}
	}
	t := c.Trial()
	if res, over := t.Result(); over {
		fmt.Fprintf(&sb, "Game over after %d moves: %s", t.NumMoves(), res)
		return sb.String()
	}
	fmt.Fprintf(&sb, "Move %d, player %d to move", t.NumMoves()+1, c.Mover())
	if last := t.LastMove(); last != nil {
		fmt.Fprintf(&sb, " (last: %s)", last)
	}
	return sb.String()
}
