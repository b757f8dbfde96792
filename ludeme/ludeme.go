// Package ludeme defines the contracts every rule node implements and the
// shared machinery behind them: the Base that computes flags, concepts,
// footprints and diagnostics by union over children, write-once folding
// cells, tree walking, register scoping and the engine's error kinds.
//
// Concrete nodes live in the family packages (booleans, ints, arrays,
// regions, dims, moves, effects).
package ludeme

import (
	"fmt"
	"strings"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
)

// Ludeme is the part of the node contract shared by every category.
type Ludeme interface {
	// IsStatic is true if Eval returns the same value for every context
	// of the same compiled game.
	IsStatic() bool
	GameFlags(g *game.Game) game.Flags
	Concepts(g *game.Game) concept.Set
	// MissingRequirement and WillCrash add a line to the game report
	// for every problem they find.
	MissingRequirement(g *game.Game) bool
	WillCrash(g *game.Game) bool
	ReadsEvalContextFlat() game.RegisterSet
	ReadsEvalContextRecursive() game.RegisterSet
	WritesEvalContextFlat() game.RegisterSet
	WritesEvalContextRecursive() game.RegisterSet
	// Preprocess recurses into the children and then folds the node if
	// it is static. Calling it again has no effect.
	Preprocess(g *game.Game)
	Children() []Ludeme
}

type BooleanFunction interface {
	Ludeme
	Eval(c *game.Context) bool
}

type IntFunction interface {
	Ludeme
	Eval(c *game.Context) int
}

type IntArrayFunction interface {
	Ludeme
	Eval(c *game.Context) []int
}

type RegionFunction interface {
	Ludeme
	Eval(c *game.Context) board.Region
}

// DimFunction is a board-building dimension. Dimensions are fixed before
// any context exists, so they evaluate without one.
type DimFunction interface {
	Ludeme
	Eval() int
}

// Moves generates candidate moves for the mover.
type Moves interface {
	Ludeme
	Eval(c *game.Context) []*game.Move
}

// Effect mutates the state through undoable actions. Every Effect is
// also a game.Consequence.
type Effect interface {
	Ludeme
	Eval(c *game.Context)
}

// Of converts a list of nodes of one category to plain Ludemes, dropping
// nil entries.
func Of[T Ludeme](xs ...T) []Ludeme {
	out := make([]Ludeme, 0, len(xs))
	for _, x := range xs {
		if Ludeme(x) != nil {
			out = append(out, x)
		}
	}
	return out
}

// Name is the short type name of a node, used in diagnostics.
func Name(n Ludeme) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*")
}
