package rules_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/booleans"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ints"
	"github.com/domino14/ludeme/moves"
	"github.com/domino14/ludeme/rules"
	"github.com/domino14/ludeme/testhelpers"
)

// playSites applies, for each site in turn, the legal move landing on it.
func playSites(t *testing.T, c *game.Context, sites ...int) {
	t.Helper()
	for _, s := range sites {
		var found *game.Move
		for _, m := range c.Moves() {
			if m.To() == s {
				found = m
				break
			}
		}
		require.NotNil(t, found, "no move to %d", s)
		c.Apply(found)
	}
}

func TestTicTacToeWin(t *testing.T) {
	is := is.New(t)
	g, _, err := testhelpers.Load("tictactoe")
	is.NoErr(err)
	c := g.NewTrial(1)
	is.Equal(len(c.Moves()), 9)

	playSites(t, c, 0, 3, 1, 4)
	is.True(!c.Trial().Over())
	playSites(t, c, 2)
	res, over := c.Trial().Result()
	is.True(over)
	is.Equal(res.Winner, 1)
	is.Equal(len(c.Moves()), 0)

	c.Undo()
	is.True(!c.Trial().Over())
	is.Equal(len(c.Moves()), 5)
}

func TestTicTacToeDraw(t *testing.T) {
	is := is.New(t)
	g, _, err := testhelpers.Load("tictactoe")
	is.NoErr(err)
	c := g.NewTrial(1)
	playSites(t, c, 0, 1, 2, 4, 3, 5, 7, 6)
	is.True(!c.Trial().Over())
	playSites(t, c, 8)
	res, over := c.Trial().Result()
	is.True(over)
	is.True(res.IsDraw())
}

func TestFlipperStart(t *testing.T) {
	is := is.New(t)
	g, s, err := testhelpers.Load("flipper")
	is.NoErr(err)
	c := g.NewTrial(1)
	st := c.State()
	is.Equal(st.Who(14), 1)
	is.Equal(st.Who(21), 1)
	is.Equal(st.Who(15), 2)
	is.Equal(st.Who(20), 2)
	is.Equal(c.Trial().NumMoves(), 0)

	ms := c.Moves()
	is.True(len(ms) > 0)
	is.True(!ms[0].IsPass())
	is.True(g.Concepts().Has(concept.Flip))
	is.True(g.Concepts().Has(concept.Priority))
	is.True(s.Sites == 36)
}

func TestFlipperFlipsOnPlay(t *testing.T) {
	is := is.New(t)
	g, _, err := testhelpers.Load("flipper")
	is.NoErr(err)
	c := g.NewTrial(1)
	// 16 encloses 15 between it and 14.
	playSites(t, c, 16)
	is.Equal(c.State().Who(15), 1)
	is.Equal(c.State().PieceCount(1), 4)
	is.Equal(c.State().PieceCount(2), 1)
	c.Undo()
	is.Equal(c.State().Who(15), 2)
}

func TestHopper(t *testing.T) {
	is := is.New(t)
	g, s, err := testhelpers.Load("hopper")
	is.NoErr(err)
	c := g.NewTrial(1)
	is.Equal(c.State().PieceCount(1), 5)
	is.Equal(c.State().PieceCount(2), 5)
	// Only forward steps off the back row.
	is.Equal(len(c.Moves()), 5)
	is.True(g.Concepts().Has(concept.HopCapture))
	is.True(len(s.MissingRequirements) == 0)
}

func TestEndRules(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{NumPlayers: 3})
	c := g.NewContext(1)

	res, ok := rules.Win(booleans.True(), nil).Eval(c)
	is.True(ok)
	is.Equal(res.Winner, 1)

	res, ok = rules.Win(booleans.True(), ints.NewPlayer(3)).Eval(c)
	is.True(ok)
	is.Equal(res.Winner, 3)

	res, _ = rules.Loss(booleans.True(), nil).Eval(c)
	is.True(res.Winner != 1)
	is.Equal(res.Ranking[1], 3.0)

	res, _ = rules.Draw(booleans.True()).Eval(c)
	is.True(res.IsDraw())

	_, ok = rules.Win(booleans.False(), nil).Eval(c)
	is.True(!ok)

	r := rules.New(nil, moves.NewPass(),
		rules.Win(booleans.False(), nil),
		rules.Loss(booleans.True(), ints.NewPlayer(2)),
		rules.Draw(booleans.True()))
	res, ok = r.End(c)
	is.True(ok)
	// The loss fires before the draw.
	is.Equal(res.Ranking[2], 3.0)
	is.Equal(len(r.Roots()), 4)
}

func TestCompileErrors(t *testing.T) {
	g := testhelpers.NewGame(t, game.Options{})
	_, err := rules.Compile(g, rules.New(nil, nil, rules.Draw(booleans.True())))
	assert.ErrorIs(t, err, rules.ErrNoPlay)
	_, err = rules.Compile(g, rules.New(nil, moves.NewPass()))
	assert.ErrorIs(t, err, rules.ErrNoEndRules)
}

func TestCompileReportsDiagnostics(t *testing.T) {
	b, err := board.NewGraph(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	g := testhelpers.NewGame(t, game.Options{Board: b})
	r := rules.New(nil, moves.NewSlide(nil, board.Orthogonal, nil),
		rules.Draw(booleans.Eq(ints.Div(ints.NewConst(1), ints.NewConst(0)), ints.NewConst(0))))
	s, err := rules.Compile(g, r)
	require.NoError(t, err)
	assert.Len(t, s.MissingRequirements, 1)
	assert.Len(t, s.WillCrash, 1)
	assert.Contains(t, s.Flags, "Graph")
	assert.Contains(t, s.String(), "missing requirement: ")

	y, err := s.YAML()
	require.NoError(t, err)
	assert.Contains(t, y, "will_crash:")
	assert.Same(t, r, g.Rules())
}

func TestSummaryAndFingerprint(t *testing.T) {
	is := is.New(t)
	_, a, err := testhelpers.Load("tictactoe")
	is.NoErr(err)
	_, b, err := testhelpers.Load("tictactoe")
	is.NoErr(err)
	_, h, err := testhelpers.Load("hopper")
	is.NoErr(err)

	is.Equal(a.Fingerprint, b.Fingerprint)
	is.True(a.Fingerprint != h.Fingerprint)
	is.Equal(len(a.Fingerprint), 16)
	is.True(a.Nodes > 10)
	is.Equal(a.Players, 2)
	is.Equal(a.Sites, 9)

	y, err := a.YAML()
	is.NoErr(err)
	is.True(strings.Contains(y, "game: tictactoe"))
	is.True(!strings.Contains(y, "missing_requirements"))
	is.True(strings.Contains(a.String(), "concepts: "))
	is.True(strings.Contains(strings.Join(a.Concepts, " "), "PiecePlacement"))
}
