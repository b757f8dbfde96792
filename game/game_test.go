package game

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/ludeme/board"
)

// fakeRules ends the game as a win for the mover once the mover owns
// endAt pieces.
type fakeRules struct {
	endAt int
}

func (r *fakeRules) Start(c *Context) {}

func (r *fakeRules) Moves(c *Context) []*Move {
	var out []*Move
	mover := c.Mover()
	for _, site := range c.State().Empty().Sites() {
		out = append(out, NewMove(MoveAdd, mover, board.Off, site,
			NewAdd(site, Piece{What: mover, Who: mover}, false)))
	}
	return out
}

func (r *fakeRules) End(c *Context) (Result, bool) {
	if r.endAt > 0 && c.State().PieceCount(c.Mover()) >= r.endAt {
		return NewResult(c.Game().NumPlayers(), c.Mover(), OutcomeWin), true
	}
	return Result{}, false
}

func newTestGame(t *testing.T, stacking bool) *Game {
	t.Helper()
	b, err := board.NewSquare(3)
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(Options{
		Name:       "test",
		Board:      b,
		Components: []Component{{Name: "Disc1", Owner: 1}, {Name: "Disc2", Owner: 2}},
		NumPlayers: 2,
		Stacking:   stacking,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewValidation(t *testing.T) {
	is := is.New(t)
	b, _ := board.NewSquare(3)

	_, err := New(Options{NumPlayers: 2})
	is.True(errors.Is(err, ErrNoBoard))

	_, err = New(Options{Board: b, NumPlayers: 0})
	is.True(errors.Is(err, ErrBadNumPlayers))

	_, err = New(Options{Board: b, NumPlayers: 2, Teams: []int{0, 1}})
	is.True(errors.Is(err, ErrBadTeams))

	_, err = New(Options{Board: b, NumPlayers: 2, Components: []Component{{Name: "X", Owner: 3}}})
	is.True(errors.Is(err, ErrBadOwner))
}

func TestTeams(t *testing.T) {
	is := is.New(t)
	b, _ := board.NewSquare(3)
	g, err := New(Options{Board: b, NumPlayers: 4, Teams: []int{0, 1, 2, 1, 2}})
	is.NoErr(err)
	is.True(g.HasTeams())
	is.Equal(g.NumTeams(), 2)
	is.Equal(g.TeamMembers(1), []int{1, 3})
	is.Equal(g.Team(4), 2)
	is.Equal(g.Team(5), board.Off)

	g2 := newTestGame(t, false)
	is.Equal(g2.Team(2), 2)
	is.Equal(g2.NumTeams(), 2)
}

func TestComponents(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, false)
	is.Equal(g.ComponentIndex("Disc2"), 2)
	is.Equal(g.ComponentIndex("Nope"), 0)
	c, ok := g.Component(1)
	is.True(ok)
	is.Equal(c.Owner, 1)
	_, ok = g.Component(0)
	is.True(!ok)
}

func TestNewResult(t *testing.T) {
	is := is.New(t)
	r := NewResult(2, 1, OutcomeWin)
	is.Equal(r.Winner, 1)
	is.Equal(r.Ranking[1:], []float64{1, 2})

	r = NewResult(2, 1, OutcomeLoss)
	is.Equal(r.Winner, 2)
	is.Equal(r.Ranking[1:], []float64{2, 1})

	r = NewResult(3, 2, OutcomeWin)
	is.Equal(r.Ranking[1:], []float64{2.5, 1, 2.5})

	r = NewResult(2, 0, OutcomeWin)
	is.True(r.IsDraw())
	is.Equal(r.Ranking[1:], []float64{1.5, 1.5})
}

func TestGameMovesAndEnd(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, false)
	g.Compiled(&fakeRules{endAt: 2}, 0, g.Concepts())
	c := g.NewTrial(1)

	is.Equal(len(g.Moves(c)), 9)
	c.Apply(g.Moves(c)[0]) // P1 on 0
	c.Apply(g.Moves(c)[0]) // P2 on 1
	is.True(!c.Trial().Over())
	c.Apply(g.Moves(c)[0]) // P1 on 2: two pieces, game over
	is.True(c.Trial().Over())
	res, ok := c.Trial().Result()
	is.True(ok)
	is.Equal(res.Winner, 1)
	is.Equal(len(g.Moves(c)), 0)
	is.True(!c.State().Active(1))

	c.Undo()
	is.True(!c.Trial().Over())
	is.True(c.State().Active(1))
	is.Equal(c.Mover(), 1)
	is.Equal(len(g.Moves(c)), 7)
}

func TestReport(t *testing.T) {
	is := is.New(t)
	r := NewReport()
	r.AddMissingRequirement("needs stacking")
	r.AddMissingRequirement("needs stacking")
	r.AddWillCrash("bad site")
	is.Equal(r.MissingRequirements(), []string{"needs stacking"})
	is.Equal(r.WillCrashes(), []string{"bad site"})
	is.True(r.HasProblems())
	is.Equal(r.String(), "missing requirement: needs stacking\nwill crash: bad site\n")
}

func TestReportConcurrentAdds(t *testing.T) {
	is := is.New(t)
	r := NewReport()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.AddMissingRequirement(fmt.Sprintf("req %d", j))
				r.AddWillCrash("div by zero")
				_ = r.HasProblems()
			}
		}()
	}
	wg.Wait()
	is.Equal(len(r.MissingRequirements()), 50)
	is.Equal(r.WillCrashes(), []string{"div by zero"})
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	f := FlagStacking | FlagScore
	is.True(f.Has(FlagStacking))
	is.True(!f.Has(FlagStacking | FlagCount))
	is.Equal(f.Names(), []string{"Stacking", "Score"})
}
