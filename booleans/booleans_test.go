package booleans_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/ludeme/arrays"
	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/booleans"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ints"
	"github.com/domino14/ludeme/ludeme"
	"github.com/domino14/ludeme/moves"
	"github.com/domino14/ludeme/regions"
	"github.com/domino14/ludeme/testhelpers"
)

func k(v int) ludeme.IntFunction { return ints.NewConst(v) }

func TestLogic(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	T, F := booleans.True(), booleans.False()

	is.True(booleans.NewAnd(T, T).Eval(c))
	is.True(!booleans.NewAnd(T, F).Eval(c))
	is.True(booleans.NewAnd().Eval(c))
	is.True(booleans.NewOr(F, T).Eval(c))
	is.True(!booleans.NewOr().Eval(c))
	is.True(booleans.NewNot(F).Eval(c))
	is.True(booleans.NewXor(T, F).Eval(c))
	is.True(!booleans.NewXor(T, T).Eval(c))
	is.True(booleans.NewIf(T, T, F).Eval(c))
	is.True(!booleans.NewIf(F, T, nil).Eval(c))
}

func TestCompare(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	cases := []struct {
		n    ludeme.BooleanFunction
		want bool
	}{
		{booleans.Eq(k(3), k(3)), true},
		{booleans.Ne(k(3), k(3)), false},
		{booleans.Lt(k(2), k(3)), true},
		{booleans.Le(k(3), k(3)), true},
		{booleans.Gt(k(2), k(3)), false},
		{booleans.Ge(k(4), k(3)), true},
	}
	for _, tc := range cases {
		tc.n.Preprocess(g)
		is.Equal(tc.n.Eval(c), tc.want)
	}
}

func TestAllValuesScenario(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	restore := c.Bind(game.RegValue, 11)
	defer restore()

	n := booleans.NewAllValues(arrays.NewLiteral(2, 5, 7), booleans.Gt(ints.Value(), k(3)))
	is.True(!n.Eval(c))
	is.Equal(c.Value(), 11)

	n2 := booleans.NewAllValues(arrays.NewLiteral(5, 7), booleans.Gt(ints.Value(), k(3)))
	is.True(n2.Eval(c))

	empty := booleans.NewAllValues(arrays.NewLiteral(), booleans.False())
	is.True(empty.Eval(c))
}

func TestAllDifferentAndPassed(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	is.True(booleans.NewAllDifferent(arrays.NewLiteral(1, 2, 3)).Eval(c))
	is.True(!booleans.NewAllDifferent(arrays.NewLiteral(1, 2, 1)).Eval(c))

	passed := booleans.NewAllPassed()
	is.True(!passed.Eval(c))
	c.Apply(game.NewPassMove(1))
	is.True(!passed.Eval(c))
	is.True(booleans.NewWasPass().Eval(c))
	c.Apply(game.NewPassMove(2))
	is.True(passed.Eval(c))
}

func TestAllLevels(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{Stacking: true})
	c := g.NewContext(1)
	testhelpers.Put(c, 0, 1, true)
	testhelpers.Put(c, 0, 1, true)
	mine := booleans.NewAllLevels(k(0), booleans.Eq(ints.Who(k(0), ints.Level()), k(1)))
	is.True(mine.Eval(c))
	testhelpers.Put(c, 0, 2, true)
	is.True(!mine.Eval(c))
	is.Equal(c.Level(), board.Off)
}

func TestRepetitionScenario(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	rep := booleans.NewIsRepeat(booleans.RepeatPositional)
	is.True(!rep.Eval(c))
	c.Trial().RecordState(c.State().Hash(), c.State().FullHash())
	is.True(rep.Eval(c))

	sit := booleans.NewIsRepeat(booleans.RepeatSituational)
	is.True(sit.Eval(c))
	testhelpers.Put(c, 3, 1, false)
	is.True(!rep.Eval(c))
	is.True(!sit.Eval(c))
}

func TestIsFamily(t *testing.T) {
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 4, 1, false)
	testhelpers.Put(c, 5, 2, false)

	build := func(tp booleans.IsType, p booleans.IsParams) ludeme.BooleanFunction {
		n, err := booleans.Is(tp, p)
		require.NoError(t, err)
		return n
	}
	assert.True(t, build(booleans.IsEmpty, booleans.IsParams{Site: k(0)}).Eval(c))
	assert.False(t, build(booleans.IsEmpty, booleans.IsParams{Site: k(4)}).Eval(c))
	assert.False(t, build(booleans.IsEmpty, booleans.IsParams{Site: k(99)}).Eval(c))
	assert.True(t, build(booleans.IsOccupied, booleans.IsParams{Site: k(5)}).Eval(c))
	assert.True(t, build(booleans.IsFriend, booleans.IsParams{Player: ints.Who(k(4), nil)}).Eval(c))
	assert.True(t, build(booleans.IsEnemy, booleans.IsParams{Player: ints.Who(k(5), nil)}).Eval(c))
	assert.False(t, build(booleans.IsEnemy, booleans.IsParams{Player: ints.Who(k(0), nil)}).Eval(c))
	assert.True(t, build(booleans.IsIn, booleans.IsParams{Site: k(4), Region: regions.NewOccupied(nil)}).Eval(c))
	assert.True(t, build(booleans.IsIn, booleans.IsParams{Value: k(3), Array: arrays.NewLiteral(1, 3)}).Eval(c))
	assert.True(t, build(booleans.IsEven, booleans.IsParams{Value: k(4)}).Eval(c))
	assert.True(t, build(booleans.IsOdd, booleans.IsParams{Value: k(-3)}).Eval(c))
	assert.True(t, build(booleans.IsActive, booleans.IsParams{Player: k(2)}).Eval(c))
	assert.True(t, build(booleans.IsMover, booleans.IsParams{Player: k(1)}).Eval(c))
	assert.False(t, build(booleans.IsVisited, booleans.IsParams{Site: k(4)}).Eval(c))

	bad := []struct {
		tp booleans.IsType
		p  booleans.IsParams
	}{
		{booleans.IsEmpty, booleans.IsParams{}},
		{booleans.IsFriend, booleans.IsParams{}},
		{booleans.IsIn, booleans.IsParams{Site: k(1), Value: k(1), Array: arrays.NewLiteral()}},
		{booleans.IsIn, booleans.IsParams{Site: k(1)}},
		{booleans.IsRepeat, booleans.IsParams{Site: k(1)}},
		{booleans.IsOdd, booleans.IsParams{}},
	}
	for _, b := range bad {
		_, err := booleans.Is(b.tp, b.p)
		assert.ErrorIs(t, err, ludeme.ErrIllegalParameters)
	}
}

func TestCanMoveAfterVisitingForks(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	// Moves are only possible onto unvisited empty sites.
	gen := moves.NewAdd(nil, regions.Difference(regions.NewEmpty(), regions.NewVisited()), false)
	all := make([]ludeme.IntFunction, 9)
	for i := range all {
		all[i] = k(i)
	}
	can := booleans.NewCanMoveAfterVisiting(gen, all...)
	is.True(!can.Eval(c))
	for s := 0; s < 9; s++ {
		is.True(!c.State().Visited(s))
	}
	is.True(booleans.NewCanMove(gen).Eval(c))
}

func TestNoFamily(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	c := g.NewContext(1)
	testhelpers.Put(c, 0, 2, false)

	noPieces, err := booleans.No(booleans.NoPieces, booleans.NoParams{Player: ints.Mover()})
	is.NoErr(err)
	is.True(noPieces.Eval(c))
	is.True(!booleans.NewNoPieces(ints.Next()).Eval(c))

	// Player 2 can step from 0 onto 1 or 3, player 1 has nothing to step.
	step := moves.NewStep(nil, board.Orthogonal, nil)
	is.True(booleans.NewNoMoves(nil, step).Eval(c))
	is.True(!booleans.NewNoMoves(ints.Next(), step).Eval(c))
	is.Equal(c.Mover(), 1)

	_, err = booleans.No(booleans.NoType(99), booleans.NoParams{})
	is.True(err != nil)
}
