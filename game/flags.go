package game

import "strings"

// Flags are low-level engine capability requirements of a compiled game.
// They are the union of the flags of every rule in the game.
type Flags uint64

const (
	FlagStochastic Flags = 1 << iota
	FlagStacking
	FlagCount
	FlagSiteState
	FlagPieceValue
	FlagScore
	FlagVisited
	FlagRepeatPositional
	FlagRepeatSituational
	FlagTeam
	FlagGraph
	FlagMoveAgain
	FlagUsesFrom
	FlagCounter
	FlagLastMove

	numFlags = iota
)

var flagNames = [numFlags]string{
	"Stochastic", "Stacking", "Count", "SiteState", "PieceValue", "Score",
	"Visited", "RepeatPositional", "RepeatSituational", "Team", "Graph",
	"MoveAgain", "UsesFrom", "Counter", "LastMove",
}

// Has is true if every flag in o is set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Names lists the set flags.
func (f Flags) Names() []string {
	var out []string
	for i := 0; i < numFlags; i++ {
		if f&(1<<i) != 0 {
			out = append(out, flagNames[i])
		}
	}
	return out
}

func (f Flags) String() string {
	return "[" + strings.Join(f.Names(), " ") + "]"
}
