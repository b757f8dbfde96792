package game

import "fmt"

type Outcome uint8

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLoss:
		return "Loss"
	case OutcomeDraw:
		return "Draw"
	}
	return "Unknown"
}

// Result is the final ranking of a trial. Ranking is indexed by player
// (index 0 unused); rank 1 is best, tied players share the mean rank.
type Result struct {
	Winner  int
	Ranking []float64
}

// NewResult builds the ranking produced when player who gets outcome.
// In games with more than two players a win ranks who first and everyone
// else tied for second; a loss ranks who last and everyone else tied
// above.
func NewResult(numPlayers, who int, outcome Outcome) Result {
	r := Result{Ranking: make([]float64, numPlayers+1)}
	if who < 1 || who > numPlayers || outcome == OutcomeDraw {
		mean := float64(numPlayers+1) / 2
		for p := 1; p <= numPlayers; p++ {
			r.Ranking[p] = mean
		}
		return r
	}
	switch outcome {
	case OutcomeWin:
		others := float64(2+numPlayers) / 2
		for p := 1; p <= numPlayers; p++ {
			r.Ranking[p] = others
		}
		r.Ranking[who] = 1
		r.Winner = who
	case OutcomeLoss:
		others := float64(numPlayers) / 2
		if numPlayers == 1 {
			others = 1
		}
		for p := 1; p <= numPlayers; p++ {
			r.Ranking[p] = others
		}
		r.Ranking[who] = float64(numPlayers)
		if numPlayers == 2 {
			r.Winner = 3 - who
		}
	}
	return r
}

// IsDraw is true when nobody was ranked uniquely first.
func (r Result) IsDraw() bool {
	return r.Winner == 0
}

func (r Result) String() string {
	if r.IsDraw() {
		return fmt.Sprintf("draw %v", r.Ranking[1:])
	}
	return fmt.Sprintf("P%d wins %v", r.Winner, r.Ranking[1:])
}
