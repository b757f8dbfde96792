// Package testhelpers holds the sample games used by the tests, the shell
// and the playout tool. Games are built programmatically from rule nodes.
package testhelpers

import (
	"fmt"
	"sort"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/booleans"
	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/effects"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ints"
	"github.com/domino14/ludeme/ludeme"
	"github.com/domino14/ludeme/moves"
	"github.com/domino14/ludeme/regions"
	"github.com/domino14/ludeme/rules"
)

var DefaultConfig = config.DefaultConfig()

// Builder builds an uncompiled game and its rules.
type Builder func() (*game.Game, *rules.Rules, error)

var library = map[string]Builder{
	"tictactoe": TicTacToe,
	"hopper":    Hopper,
	"flipper":   Flipper,
}

// Names lists the sample games, sorted.
func Names() []string {
	out := make([]string, 0, len(library))
	for n := range library {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Load builds and compiles a sample game.
func Load(name string) (*game.Game, *rules.Summary, error) {
	b, ok := library[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown game %q", name)
	}
	g, r, err := b()
	if err != nil {
		return nil, nil, err
	}
	s, err := rules.Compile(g, r)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	return g, s, nil
}

func consts(vs ...int) []ludeme.IntFunction {
	out := make([]ludeme.IntFunction, len(vs))
	for i, v := range vs {
		out[i] = ints.NewConst(v)
	}
	return out
}

func twoDiscs() []game.Component {
	return []game.Component{{Name: "Disc1", Owner: 1}, {Name: "Disc2", Owner: 2}}
}

// lineOwned is true when the mover owns every site of some line.
func lineOwned(lines [][]int) ludeme.BooleanFunction {
	var checks []ludeme.BooleanFunction
	for _, l := range lines {
		checks = append(checks, booleans.NewAllSites(
			regions.NewSites(consts(l...)...),
			booleans.Eq(ints.Who(ints.Site(), nil), ints.Mover()),
		))
	}
	return booleans.NewOr(checks...)
}

// TicTacToe is noughts and crosses on a 3x3 board.
func TicTacToe() (*game.Game, *rules.Rules, error) {
	b, err := board.NewSquare(3)
	if err != nil {
		return nil, nil, err
	}
	g, err := game.New(game.Options{Name: "tictactoe", Board: b, NumPlayers: 2, Components: twoDiscs()})
	if err != nil {
		return nil, nil, err
	}
	lines := [][]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	r := rules.New(nil,
		moves.NewAdd(nil, regions.NewEmpty(), false),
		rules.Win(lineOwned(lines), nil),
		rules.Draw(booleans.Eq(ints.NewCountSites(regions.NewEmpty()), ints.NewConst(0))),
	)
	return g, r, nil
}

// Hopper is played on a 5x5 board. Pieces step orthogonally onto empty
// sites or hop over an enemy piece, capturing it. A player left without
// pieces or moves loses; after 100 turns the game is drawn.
func Hopper() (*game.Game, *rules.Rules, error) {
	b, err := board.NewSquare(5)
	if err != nil {
		return nil, nil, err
	}
	g, err := game.New(game.Options{Name: "hopper", Board: b, NumPlayers: 2, Components: twoDiscs()})
	if err != nil {
		return nil, nil, err
	}
	start := []ludeme.Effect{
		effects.NewForEachSite(regions.Row(ints.NewConst(0)), effects.NewPlace(ints.NewConst(1), ints.Site(), false)),
		effects.NewForEachSite(regions.Row(ints.NewConst(4)), effects.NewPlace(ints.NewConst(2), ints.Site(), false)),
	}
	play := moves.NewOr(
		moves.NewStep(nil, board.Orthogonal, nil),
		moves.NewHop(nil, board.Orthogonal, nil, nil, true),
	)
	r := rules.New(start, play,
		rules.Win(booleans.NewNoPieces(ints.Next()), nil),
		rules.Win(booleans.NewNoMoves(ints.Next(), nil), nil),
		rules.Draw(booleans.Ge(ints.NewCountTurns(), ints.NewConst(100))),
	)
	return g, r, nil
}

// Flipper is a small Reversi on a 6x6 board. A disc goes on an empty site
// next to an enemy disc and flips every enemy run it encloses. A player
// with nowhere to play passes. When the board is full or both players
// pass, the player with more discs wins.
func Flipper() (*game.Game, *rules.Rules, error) {
	b, err := board.NewSquare(6)
	if err != nil {
		return nil, nil, err
	}
	g, err := game.New(game.Options{Name: "flipper", Board: b, NumPlayers: 2, Components: twoDiscs()})
	if err != nil {
		return nil, nil, err
	}
	place := func(what int, sites ...int) ludeme.Effect {
		return effects.NewForEachSite(regions.NewSites(consts(sites...)...),
			effects.NewPlace(ints.NewConst(what), ints.Site(), false))
	}
	start := []ludeme.Effect{place(1, 14, 21), place(2, 15, 20)}

	nextToEnemy := booleans.Gt(
		ints.NewCountPieces(ints.Next(), regions.NewAdjacent(ints.Site(), board.AllDirections), nil),
		ints.NewConst(0))
	play := moves.NewPriority(
		moves.NewAdd(nil, regions.NewFilter(regions.NewEmpty(), nextToEnemy), false,
			effects.NewCustodial(board.AllDirections, true, 0)),
		moves.NewPass(),
	)

	p1 := ints.NewCountPieces(ints.NewPlayer(1), nil, nil)
	p2 := ints.NewCountPieces(ints.NewPlayer(2), nil, nil)
	finished := booleans.NewOr(
		booleans.Eq(ints.NewCountSites(regions.NewEmpty()), ints.NewConst(0)),
		booleans.NewAllPassed(),
	)
	r := rules.New(start, play,
		rules.Draw(booleans.NewAnd(finished, booleans.Eq(p1, p2))),
		rules.Win(finished, ints.NewIf(booleans.Gt(p1, p2), ints.NewPlayer(1), ints.NewPlayer(2))),
	)
	return g, r, nil
}
