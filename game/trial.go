package game

import "slices"

// Trial is the history of a game in progress: the applied moves, the
// state hashes seen before each of them and, once over, the result.
type Trial struct {
	moves []*Move

	// Hashes recorded before each move, for the whole game and for the
	// current turn only.
	positional        []uint64
	situational       []uint64
	positionalInTurn  []uint64
	situationalInTurn []uint64

	numTurns int
	result   *Result
}

func newTrial() *Trial {
	return &Trial{}
}

func (t *Trial) clone() *Trial {
	n := *t
	n.moves = slices.Clone(t.moves)
	n.positional = slices.Clone(t.positional)
	n.situational = slices.Clone(t.situational)
	n.positionalInTurn = slices.Clone(t.positionalInTurn)
	n.situationalInTurn = slices.Clone(t.situationalInTurn)
	if t.result != nil {
		r := *t.result
		n.result = &r
	}
	return &n
}

func (t *Trial) NumMoves() int { return len(t.moves) }
func (t *Trial) NumTurns() int { return t.numTurns }
func (t *Trial) Over() bool { return t.result != nil }

// Moves returns the applied moves, oldest first.
func (t *Trial) Moves() []*Move {
	return slices.Clone(t.moves)
}

// LastMove returns the most recent move, or nil.
func (t *Trial) LastMove() *Move {
	if len(t.moves) == 0 {
		return nil
	}
	return t.moves[len(t.moves)-1]
}

// MoveAt returns the move n places back (0 is the last move), or nil.
func (t *Trial) MoveAt(back int) *Move {
	i := len(t.moves) - 1 - back
	if back < 0 || i < 0 {
		return nil
	}
	return t.moves[i]
}

// Result returns the final result once the trial is over.
func (t *Trial) Result() (Result, bool) {
	if t.result == nil {
		return Result{}, false
	}
	return *t.result, true
}

// RecordState adds a positional and a situational hash to the history,
// both game-wide and for the current turn. Context.Apply does this before
// every move.
func (t *Trial) RecordState(positional, situational uint64) {
	t.positional = append(t.positional, positional)
	t.situational = append(t.situational, situational)
	t.positionalInTurn = append(t.positionalInTurn, positional)
	t.situationalInTurn = append(t.situationalInTurn, situational)
}

func (t *Trial) unrecordState() {
	pop := func(l *[]uint64) {
		if n := len(*l); n > 0 {
			*l = (*l)[:n-1]
		}
	}
	pop(&t.positional)
	pop(&t.situational)
	pop(&t.positionalInTurn)
	pop(&t.situationalInTurn)
}

func (t *Trial) HasPositional(h uint64) bool {
	return slices.Contains(t.positional, h)
}

func (t *Trial) HasSituational(h uint64) bool {
	return slices.Contains(t.situational, h)
}

func (t *Trial) HasPositionalInTurn(h uint64) bool {
	return slices.Contains(t.positionalInTurn, h)
}

func (t *Trial) HasSituationalInTurn(h uint64) bool {
	return slices.Contains(t.situationalInTurn, h)
}

// NumRecorded is the number of game-wide recorded states.
func (t *Trial) NumRecorded() int {
	return len(t.positional)
}
