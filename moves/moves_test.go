package moves_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/ludeme/arrays"
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/booleans"
	"github.com/domino14/ludeme/effects"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ints"
	"github.com/domino14/ludeme/ludeme"
	"github.com/domino14/ludeme/moves"
	"github.com/domino14/ludeme/regions"
	"github.com/domino14/ludeme/testhelpers"
)

func k(v int) ludeme.IntFunction { return ints.NewConst(v) }

func targets(ms []*game.Move) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.To()
	}
	return out
}

func TestAdd(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 4, 2, false)

	ms := moves.NewAdd(nil, regions.NewEmpty(), false).Eval(c)
	is.Equal(len(ms), 8)
	is.Equal(ms[0].Type(), game.MoveAdd)
	is.Equal(ms[0].What(), 1)
	c.Apply(ms[0])
	is.Equal(c.State().Who(0), 1)

	// The second player's disc, owned by them even when P1 places it.
	ms = moves.NewAdd(k(2), regions.NewSites(k(8)), false).Eval(c)
	is.Equal(len(ms), 1)
	c.Apply(ms[0])
	is.Equal(c.State().Who(8), 2)

	is.Equal(len(moves.NewAdd(k(9), regions.Board(), false).Eval(c)), 0)
}

func TestAddStacking(t *testing.T) {
	is := is.New(t)
	flat := testhelpers.NewGame(t, game.Options{})
	is.True(moves.NewAdd(nil, regions.Board(), true).MissingRequirement(flat))
	is.True(!moves.NewAdd(nil, regions.Board(), false).MissingRequirement(flat))

	g := testhelpers.NewGame(t, game.Options{Stacking: true})
	c := g.NewContext(1)
	testhelpers.Put(c, 4, 2, true)
	ms := moves.NewAdd(nil, regions.NewSites(k(4)), true).Eval(c)
	is.Equal(len(ms), 1)
	c.Apply(ms[0])
	is.Equal(c.State().StackSize(4), 2)
	is.Equal(c.State().Who(4), 1)
	c.Undo()
	is.Equal(c.State().StackSize(4), 1)
}

func TestRemoveAndPass(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 3, 1, false)
	testhelpers.Put(c, 5, 2, false)

	ms := moves.NewRemove(regions.Board()).Eval(c)
	is.Equal(targets(ms), []int{3, 5})
	is.Equal(ms[1].What(), 2)
	c.Apply(ms[1])
	is.True(c.State().IsEmpty(5))

	ps := moves.NewPass().Eval(c)
	is.Equal(len(ps), 1)
	is.True(ps[0].IsPass())
	is.Equal(ps[0].Mover(), 2)
}

func TestStep(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 4, 1, false)
	testhelpers.Put(c, 5, 2, false)

	is.Equal(targets(moves.NewStep(nil, board.Orthogonal, nil).Eval(c)), []int{7, 1, 3})
	is.Equal(c.From(), board.Off)
	is.Equal(c.To(), board.Off)

	onto := moves.NewStep(nil, board.Orthogonal, booleans.True())
	ms := onto.Eval(c)
	is.Equal(targets(ms), []int{7, 5, 1, 3})
	is.Equal(ms[1].From(), 4)
	c.Apply(ms[1])
	is.Equal(c.State().Who(5), 1)
	is.True(c.State().IsEmpty(4))
	c.Undo()
	is.Equal(c.State().Who(5), 2)
	is.Equal(c.State().Who(4), 1)

	// To is bound while the target condition runs.
	north := moves.NewStep(nil, board.AllDirections, booleans.Eq(ints.Row(ints.To()), k(2)))
	is.Equal(targets(north.Eval(c)), []int{7, 8, 6})
	is.True(north.WritesEvalContextFlat().Has(game.RegTo))
}

func TestSlide(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 0, 1, false)

	slide := moves.NewSlide(nil, board.Orthogonal, nil)
	is.Equal(targets(slide.Eval(c)), []int{3, 6, 1, 2})
	testhelpers.Put(c, 2, 2, false)
	is.Equal(targets(slide.Eval(c)), []int{3, 6, 1})
	is.Equal(c.Between(), board.Off)

	graph, err := board.NewGraph(3, [][2]int{{0, 1}, {1, 2}})
	is.NoErr(err)
	gg := testhelpers.NewGame(t, game.Options{Board: graph})
	is.True(slide.MissingRequirement(gg))
	is.True(!slide.MissingRequirement(g))
}

func TestHopCapture(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 0, 1, false)
	testhelpers.Put(c, 1, 2, false)
	testhelpers.Put(c, 3, 1, false)
	h0 := c.State().Hash()

	hop := moves.NewHop(nil, board.Orthogonal, nil, nil, true)
	ms := hop.Eval(c)
	// A friendly piece on 3 cannot be jumped.
	is.Equal(len(ms), 1)
	is.Equal(ms[0].From(), 0)
	is.Equal(ms[0].To(), 2)
	is.Equal(ms[0].Type(), game.MoveHop)

	c.Apply(ms[0])
	is.True(c.State().IsEmpty(1))
	is.True(c.State().IsEmpty(0))
	is.Equal(c.State().Who(2), 1)
	c.Undo()
	is.Equal(c.State().Hash(), h0)
	is.Equal(c.State().Who(1), 2)

	// Without capture the jumped piece stays.
	ms = moves.NewHop(nil, board.Orthogonal, nil, nil, false).Eval(c)
	c.Apply(ms[0])
	is.Equal(c.State().Who(1), 2)
}

func TestComposition(t *testing.T) {
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)

	assert.Len(t, moves.NewOr(moves.NewPass(), moves.NewPass()).Eval(c), 2)
	assert.Empty(t, moves.NewIf(booleans.False(), moves.NewPass(), nil).Eval(c))
	assert.Len(t, moves.NewIf(booleans.False(), nil, moves.NewPass()).Eval(c), 1)

	pri := moves.NewPriority(moves.NewRemove(regions.Board()), moves.NewPass())
	ms := pri.Eval(c)
	require.Len(t, ms, 1)
	assert.True(t, ms[0].IsPass())
	testhelpers.Put(c, 6, 2, false)
	ms = pri.Eval(c)
	require.Len(t, ms, 1)
	assert.Equal(t, game.MoveRemove, ms[0].Type())

	corners := moves.NewForEachSite(regions.Corners(),
		moves.NewAdd(nil, regions.NewSites(ints.Site()), false))
	assert.Equal(t, []int{0, 2, 8}, targets(corners.Eval(c)))
	assert.Equal(t, board.Off, c.Site())

	values := moves.NewForEachValue(arrays.NewLiteral(1, 2),
		moves.NewAdd(ints.Value(), regions.NewSites(k(4)), false))
	ms = values.Eval(c)
	require.Len(t, ms, 2)
	assert.Equal(t, 1, ms[0].What())
	assert.Equal(t, 2, ms[1].What())
	assert.Equal(t, board.Off, c.Value())

	players := moves.NewForEachPlayer(moves.NewAdd(ints.Player(), regions.NewSites(k(0)), false))
	ms = players.Eval(c)
	require.Len(t, ms, 2)
	assert.Equal(t, 2, ms[1].What())
	assert.Equal(t, board.Off, c.Player())
	assert.True(t, players.WritesEvalContextFlat().Has(game.RegPlayer))
}

func TestForEachRegion(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	each := moves.NewForEachRegion(moves.NewAdd(nil, regions.NewRegister(), false),
		regions.Row(k(0)), regions.Column(k(2)))
	is.Equal(targets(each.Eval(c)), []int{0, 1, 2, 2, 5, 8})
	is.Equal(c.Region().Count(), 0)
	is.True(each.WritesEvalContextFlat().Has(game.RegRegion))
	is.True(!each.IsStatic())
}

func TestForEachTeam(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{NumPlayers: 4, Teams: []int{0, 1, 2, 1, 2}})
	c := g.NewContext(1)
	each := moves.NewForEachTeam(moves.NewAdd(nil, regions.Row(ints.Team()), false))
	is.True(!each.MissingRequirement(g))
	is.True(each.GameFlags(g).Has(game.FlagTeam))
	is.Equal(targets(each.Eval(c)), []int{3, 4, 5, 6, 7, 8})
	is.Equal(c.Team(), board.Off)

	solo := testhelpers.NewGame(t, game.Options{})
	is.True(each.MissingRequirement(solo))
}

func TestThenIsUndoneWithMove(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	add := moves.NewAdd(nil, regions.NewSites(k(4)), false,
		effects.AddScore(ints.Mover(), k(3)),
		effects.SetState(ints.To(), k(7)))
	ms := add.Eval(c)
	is.Equal(len(ms), 1)
	is.Equal(len(ms[0].Then()), 2)

	c.Apply(ms[0])
	is.Equal(c.State().Score(1), 3)
	is.Equal(c.State().PieceAt(4, board.Off).State, 7)
	is.Equal(c.Mover(), 2)

	c.Undo()
	is.Equal(c.State().Score(1), 0)
	is.True(c.State().IsEmpty(4))
	is.Equal(c.State().Hash(), uint64(0))
}
