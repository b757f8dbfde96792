package ludeme

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
)

// Analysis is the static analysis of a set of rule trees.
type Analysis struct {
	Flags              game.Flags
	Concepts           concept.Set
	MissingRequirement bool
	WillCrash          bool
}

// Analyze preprocesses every root and then computes the union of their
// flags and concepts and runs both diagnostics. Every diagnostic is run on
// every root, so the game report ends up the same whatever the order.
func Analyze(g *game.Game, roots ...Ludeme) Analysis {
	var a Analysis
	for _, r := range Of(roots...) {
		r.Preprocess(g)
	}
	for _, r := range Of(roots...) {
		a.Flags |= r.GameFlags(g)
		a.Concepts = a.Concepts.Union(r.Concepts(g))
		if r.MissingRequirement(g) {
			a.MissingRequirement = true
		}
		if r.WillCrash(g) {
			a.WillCrash = true
		}
	}
	return a
}
