package concept

import (
	"testing"

	"github.com/matryer/is"
)

func TestNamesCoverVocabulary(t *testing.T) {
	is := is.New(t)
	is.Equal(len(names), Count)
	is.Equal(DrawEnd.String(), "DrawEnd")
	is.Equal(Concept(9999).String(), "Unknown")
}

func TestSetUnion(t *testing.T) {
	is := is.New(t)
	a := Of(StepMove, Capture)
	b := Of(Capture, Scoring)
	u := a.Union(b)
	is.Equal(u.Len(), 3)
	is.True(u.Has(Scoring))
	is.True(!a.Has(Scoring)) // union must not mutate its operands
	is.Equal(u.List(), []Concept{StepMove, Capture, Scoring})
	is.True(a.Union(b).Equal(b.Union(a)))

	var zero Set
	is.Equal(zero.Len(), 0)
	is.True(zero.Union(a).Equal(a))
	is.True(a.Union(zero).Equal(a))
	is.True(u.Without(Capture).Equal(Of(StepMove, Scoring)))
	is.Equal(Of(Flip).String(), "[Flip]")
}
