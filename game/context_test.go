package game

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/ludeme/board"
)

func addMove(mover, site int) *Move {
	return NewMove(MoveAdd, mover, board.Off, site, NewAdd(site, Piece{What: mover, Who: mover}, false))
}

func TestStateSentinels(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	s := c.State()
	is.Equal(s.What(-1), 0)
	is.Equal(s.Who(99), 0)
	is.Equal(s.StackSize(99), 0)
	is.Equal(s.WhatAt(0, 5), 0)
	is.Equal(s.Score(0), 0)
	is.Equal(s.Score(3), 0)
	is.True(!s.Active(0))
	is.True(!s.Visited(-4))
	is.True(s.IsEmpty(4))
	is.Equal(s.Hash(), uint64(0))
}

func TestApplyUndoRestoresEverything(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	s := c.State()
	h0, f0 := s.Hash(), s.FullHash()

	c.Apply(addMove(1, 4))
	is.Equal(s.Who(4), 1)
	is.True(s.Hash() != h0)
	is.Equal(c.Mover(), 2)
	is.Equal(s.Prev(), 1)
	is.Equal(c.Trial().NumMoves(), 1)
	is.Equal(c.Trial().NumTurns(), 1)
	is.True(c.Trial().HasPositional(h0))

	c.Apply(addMove(2, 0))
	is.Equal(c.Mover(), 1)

	is.True(c.Undo() != nil)
	is.True(c.Undo() != nil)
	is.True(c.Undo() == nil)
	is.Equal(s.Hash(), h0)
	is.Equal(s.FullHash(), f0)
	is.Equal(c.Mover(), 1)
	is.Equal(s.Next(), 2)
	is.True(s.IsEmpty(4))
	is.Equal(c.Trial().NumRecorded(), 0)
	is.Equal(c.Trial().NumTurns(), 0)
}

func TestHashIsPathIndependent(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, false)
	a := g.NewContext(1)
	b := g.NewContext(2)
	a.Apply(addMove(1, 0))
	a.Apply(addMove(2, 8))
	b.Apply(addMove(1, 0))
	b.Apply(addMove(2, 5))
	b.Undo()
	b.Apply(addMove(2, 8))
	is.Equal(a.State().Hash(), b.State().Hash())
	is.Equal(a.State().FullHash(), b.State().FullHash())
}

func TestMoveAgainKeepsMover(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	m := NewMove(MoveAdd, 1, board.Off, 3, NewAdd(3, Piece{What: 1, Who: 1}, false), NewMoveAgain())
	c.Apply(m)
	is.Equal(c.Mover(), 1)
	is.True(!c.State().MoveAgain())
	c.Apply(addMove(1, 5))
	is.Equal(c.Mover(), 2)
	c.Undo()
	c.Undo()
	is.Equal(c.Mover(), 1)
	is.True(!c.State().MoveAgain())
}

func TestVisitedClearedOnTurnSwitch(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	m := NewMove(MoveOther, 1, board.Off, 2, NewVisit(2), NewMoveAgain())
	c.Apply(m)
	is.True(c.State().Visited(2))
	is.Equal(c.State().VisitedRegion().Sites(), []int{2})
	c.Apply(NewPassMove(1))
	is.True(!c.State().Visited(2))
	c.Undo()
	is.True(c.State().Visited(2))
}

func TestActionCapturesOnce(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, true).NewContext(1)
	a := NewAdd(0, Piece{What: 1, Who: 1}, true)
	a.Apply(c)
	a.Apply(c)
	is.Equal(c.State().StackSize(0), 2)
	a.Undo(c)
	is.Equal(c.State().StackSize(0), 0)
	is.Equal(c.State().Hash(), uint64(0))
	// Undo without a capture is a no-op.
	a.Undo(c)
	is.Equal(c.State().StackSize(0), 0)
}

func TestRelocateAndSetPiece(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, true).NewContext(1)
	c.Do(NewAdd(0, Piece{What: 1, Who: 1}, true))
	c.Do(NewAdd(0, Piece{What: 2, Who: 2}, true))
	h := c.State().Hash()

	mv := NewRelocate(0, 4, true)
	mv.Apply(c)
	is.Equal(c.State().StackSize(0), 1)
	is.Equal(c.State().Who(4), 2)

	flip := NewSetWho(4, -1, 1)
	flip.Apply(c)
	is.Equal(c.State().Who(4), 1)
	promote := NewSetWhat(4, 0, 3)
	promote.Apply(c)
	is.Equal(c.State().What(4), 3)
	val := NewSetValue(0, 0, 7)
	val.Apply(c)
	is.Equal(c.State().ValueAt(0, 0), 7)

	val.Undo(c)
	promote.Undo(c)
	flip.Undo(c)
	mv.Undo(c)
	is.Equal(c.State().Hash(), h)
	is.Equal(c.State().WhoAt(0, 1), 2)
	is.True(c.State().IsEmpty(4))
}

func TestScoresCounterAndCount(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	add := NewSetScore(1, 3, true)
	add.Apply(c)
	set := NewSetScore(2, 10, false)
	set.Apply(c)
	is.Equal(c.State().Score(1), 3)
	is.Equal(c.State().Score(2), 10)
	set.Undo(c)
	add.Undo(c)
	is.Equal(c.State().Score(1), 0)
	is.Equal(c.State().Score(2), 0)

	ctr := NewSetCounter(5)
	ctr.Apply(c)
	is.Equal(c.State().Counter(), 5)
	ctr.Undo(c)
	is.Equal(c.State().Counter(), 0)

	// Out-of-range players are ignored.
	NewSetScore(9, 1, true).Apply(c)
}

func TestCountMode(t *testing.T) {
	is := is.New(t)
	b, _ := board.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	g, err := New(Options{Name: "seeds", Board: b, NumPlayers: 2,
		Components: []Component{{Name: "Seed"}}, CountMode: true})
	is.NoErr(err)
	c := g.NewContext(1)
	seed := Piece{What: 1}
	for i := 0; i < 3; i++ {
		c.Do(NewAdd(2, seed, false))
	}
	is.Equal(c.State().Count(2), 3)
	is.Equal(c.State().StackSize(2), 1)
	r := NewRemove(2, -1)
	r.Apply(c)
	is.Equal(c.State().Count(2), 2)
	r.Undo(c)
	is.Equal(c.State().Count(2), 3)
}

func TestBindRestores(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	before := c.Registers()
	func() {
		restore := c.Bind(RegSite, 4)
		defer restore()
		is.Equal(c.Site(), 4)
		restoreRegion := c.BindRegion(board.NewRegion(1, 2))
		defer restoreRegion()
		is.Equal(c.Region().Count(), 2)
	}()
	is.Equal(c.Registers(), before)
	is.Equal(c.Site(), board.Off)

	c.Set(RegValue, 9)
	is.Equal(c.Get(RegValue), 9)
	is.Equal(c.Get(RegRegion), board.Off)
	c.SetRegisters(before)
	is.Equal(c.Value(), board.Off)
}

func TestForkIsolation(t *testing.T) {
	c := newTestGame(t, false).NewContext(1)

	regs := c.Fork(IsolateRegisters)
	regs.Set(RegSite, 3)
	assert.Equal(t, board.Off, c.Site())
	assert.Same(t, c.State(), regs.State())

	vis := c.Fork(IsolateVisited)
	NewVisit(5).Apply(vis)
	assert.True(t, vis.State().Visited(5))
	assert.False(t, c.State().Visited(5))

	deep := c.Fork(IsolateState)
	deep.Apply(addMove(1, 7))
	assert.Equal(t, 1, deep.State().Who(7))
	assert.True(t, c.State().IsEmpty(7))
	assert.Equal(t, 0, c.Trial().NumMoves())
	assert.Equal(t, 1, c.Mover())

	as := c.ForkAs(2)
	assert.Equal(t, 2, as.Mover())
	assert.Equal(t, 1, c.Mover())
}

func TestForkDoesNotRecordIntoParentMove(t *testing.T) {
	c := newTestGame(t, false).NewContext(1)
	m := NewMove(MoveOther, 1, board.Off, board.Off)
	c.recording = m
	f := c.Fork(IsolateVisited)
	f.Do(NewVisit(1))
	c.recording = nil
	assert.Empty(t, m.Applied())
}

func TestRepetitionRecording(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, false).NewContext(1)
	tr := c.Trial()
	h := c.State().Hash()
	is.True(!tr.HasPositional(h))
	tr.RecordState(h, c.State().FullHash())
	is.True(tr.HasPositional(h))
	is.True(tr.HasSituationalInTurn(c.State().FullHash()))

	c2 := newTestGame(t, false).NewContext(1)
	c2.Apply(addMove(1, 0))
	// In-turn history starts over when the turn passes.
	is.True(!c2.Trial().HasPositionalInTurn(0))
	is.True(c2.Trial().HasPositional(0))
	c2.Undo()
	is.True(!c2.Trial().HasPositional(0))
}

func TestMoveStrings(t *testing.T) {
	is := is.New(t)
	is.Equal(NewPassMove(1).ShortDescription(), "pass")
	is.Equal(addMove(2, 4).String(), "P2 add 4 [add(4, w2 p2)]")
	step := NewMove(MoveStep, 1, 3, 4, NewRelocate(3, 4, false))
	is.Equal(step.ShortDescription(), "step 3-4")
	is.Equal(MoveHop.String(), "hop")
}

func TestHashDistinguishesDeepStacksAndLargeCounts(t *testing.T) {
	is := is.New(t)
	c := newTestGame(t, true).NewContext(1)
	seen := map[uint64]int{c.State().Hash(): 0}
	for i := 1; i <= 2*16+2; i++ {
		c.Do(NewAdd(0, Piece{What: 1, Who: 1}, true))
		h := c.State().Hash()
		_, dup := seen[h]
		is.True(!dup) // each stack height hashes differently
		seen[h] = i
	}

	b, _ := board.NewGraph(2, [][2]int{{0, 1}})
	g, err := New(Options{Name: "seeds", Board: b, NumPlayers: 2,
		Components: []Component{{Name: "Seed"}}, CountMode: true})
	is.NoErr(err)
	sc := g.NewContext(1)
	counts := map[uint64]int{}
	for i := 1; i <= 70; i++ {
		sc.Do(NewAdd(1, Piece{What: 1}, false))
		h := sc.State().Hash()
		_, dup := counts[h]
		is.True(!dup) // each seed count hashes differently
		counts[h] = i
	}
	is.Equal(sc.State().Count(1), 70)
}

func TestNestedContext(t *testing.T) {
	is := is.New(t)
	outer := newTestGame(t, false).NewContext(1)
	outer.Apply(addMove(1, 4))

	inner := newTestGame(t, false).NewNestedContext(outer, 2)
	is.True(outer.Parent() == nil)
	is.True(inner.Parent() == outer)
	is.True(inner.State().IsEmpty(4))
	is.Equal(inner.Parent().State().Who(4), 1)

	inner.Apply(addMove(1, 0))
	is.True(outer.State().IsEmpty(0))
	is.True(inner.Fork(IsolateState).Parent() == outer)
	is.True(inner.ForkAs(2).Parent() == outer)
}
