package ludeme

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
)

// Traits are what a node contributes by itself, on top of its children.
type Traits struct {
	Flags    game.Flags
	Concepts concept.Set
	Reads    game.RegisterSet
	Writes   game.RegisterSet
	// Dynamic nodes depend on live state (registers, the board, the
	// trial, the RNG) and are never static.
	Dynamic bool
}

// Base implements the cross-cutting parts of the node contract. Node types
// embed it and override only what they add: an extra diagnostic, a flag
// that depends on the game, or a folding Preprocess.
type Base struct {
	children []Ludeme
	traits   Traits
}

// NewBase builds a Base; nil children are dropped.
func NewBase(t Traits, children ...Ludeme) Base {
	return Base{children: Of(children...), traits: t}
}

func (b *Base) Children() []Ludeme {
	return b.children
}

func (b *Base) Traits() Traits {
	return b.traits
}

// IsStatic is the conjunction over the children, and false for dynamic
// nodes regardless of them.
func (b *Base) IsStatic() bool {
	if b.traits.Dynamic {
		return false
	}
	for _, c := range b.children {
		if !c.IsStatic() {
			return false
		}
	}
	return true
}

func (b *Base) GameFlags(g *game.Game) game.Flags {
	f := b.traits.Flags
	for _, c := range b.children {
		f |= c.GameFlags(g)
	}
	return f
}

func (b *Base) Concepts(g *game.Game) concept.Set {
	s := b.traits.Concepts
	for _, c := range b.children {
		s = s.Union(c.Concepts(g))
	}
	return s
}

// MissingRequirement asks every child, without short-circuiting, so the
// report is the same whatever the first failing child is.
func (b *Base) MissingRequirement(g *game.Game) bool {
	missing := false
	for _, c := range b.children {
		if c.MissingRequirement(g) {
			missing = true
		}
	}
	return missing
}

func (b *Base) WillCrash(g *game.Game) bool {
	crash := false
	for _, c := range b.children {
		if c.WillCrash(g) {
			crash = true
		}
	}
	return crash
}

func (b *Base) ReadsEvalContextFlat() game.RegisterSet {
	return b.traits.Reads
}

func (b *Base) ReadsEvalContextRecursive() game.RegisterSet {
	r := b.traits.Reads
	for _, c := range b.children {
		r |= c.ReadsEvalContextRecursive()
	}
	return r
}

func (b *Base) WritesEvalContextFlat() game.RegisterSet {
	return b.traits.Writes
}

func (b *Base) WritesEvalContextRecursive() game.RegisterSet {
	w := b.traits.Writes
	for _, c := range b.children {
		w |= c.WritesEvalContextRecursive()
	}
	return w
}

// Preprocess recurses into the children. Foldable nodes override it with
// Fold.
func (b *Base) Preprocess(g *game.Game) {
	for _, c := range b.children {
		c.Preprocess(g)
	}
}

// Require adds a missing-requirement line to the report when ok is false,
// and reports whether it did.
func Require(g *game.Game, ok bool, n Ludeme, msg string) bool {
	if ok {
		return false
	}
	g.Report().AddMissingRequirement(Name(n) + ": " + msg)
	return true
}

// Crash adds a will-crash line to the report when bad is true.
func Crash(g *game.Game, bad bool, n Ludeme, msg string) bool {
	if !bad {
		return false
	}
	g.Report().AddWillCrash(Name(n) + ": " + msg)
	return true
}
