package dims_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/ludeme/dims"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/testhelpers"
)

func TestBinary(t *testing.T) {
	is := is.New(t)
	three, four := dims.NewConst(3), dims.NewConst(4)
	is.Equal(dims.Add(three, four).Eval(), 7)
	is.Equal(dims.Sub(three, four).Eval(), -1)
	is.Equal(dims.Mul(three, four).Eval(), 12)
	is.Equal(dims.Min(three, four).Eval(), 3)
	is.Equal(dims.Max(three, four).Eval(), 4)

	g := testhelpers.NewGame(t, game.Options{})
	n := dims.Add(dims.Mul(three, three), dims.NewConst(1))
	is.True(n.IsStatic())
	n.Preprocess(g)
	is.Equal(n.Eval(), 10)
}

func TestBoards(t *testing.T) {
	is := is.New(t)
	b, err := dims.Rectangle(dims.NewConst(2), dims.Add(dims.NewConst(2), dims.NewConst(3)))
	is.NoErr(err)
	is.Equal(b.NumSites(), 10)
	is.Equal(b.Rows(), 2)
	is.Equal(b.Columns(), 5)

	sq, err := dims.Square(dims.NewConst(4))
	is.NoErr(err)
	is.Equal(sq.NumSites(), 16)

	_, err = dims.Square(dims.Sub(dims.NewConst(1), dims.NewConst(1)))
	is.True(err != nil)
}
