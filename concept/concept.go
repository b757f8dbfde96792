// Package concept is the vocabulary of high-level semantic tags attached
// to compiled games. Downstream tooling (distance metrics, AI hints) reads
// these; the engine itself never branches on them.
package concept

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

type Concept uint

const (
	// Board / equipment
	Stacking Concept = iota
	CountPieces
	SiteState
	PieceValue
	GraphBoard
	Corners
	Perimeter
	Centre
	Team

	// Logic
	Conjunction
	Disjunction
	Negation
	ExclusiveDisjunction
	Comparison
	Conditional
	Arithmetic
	Iteration
	SetOperation
	Random

	// Directions
	Adjacency
	OrthogonalDirection
	DiagonalDirection

	// Moves
	PiecePlacement
	PieceRemoval
	StepMove
	SlideMove
	HopMove
	PassMove
	MoveAgain
	Priority
	Promotion

	// Captures
	Capture
	HopCapture
	ReplacementCapture
	CustodialCapture
	Flip

	// State queries
	Visited
	Repetition
	PositionalRepetition
	SituationalRepetition
	NoMoves
	NoPieces
	Scoring
	Counter

	// Ending
	WinEnd
	LossEnd
	DrawEnd

	numConcepts
)

var names = [...]string{
	"Stacking", "CountPieces", "SiteState", "PieceValue", "GraphBoard", "Corners",
	"Perimeter", "Centre", "Team",
	"Conjunction", "Disjunction", "Negation", "ExclusiveDisjunction", "Comparison",
	"Conditional", "Arithmetic", "Iteration", "SetOperation", "Random",
	"Adjacency", "OrthogonalDirection", "DiagonalDirection",
	"PiecePlacement", "PieceRemoval", "StepMove", "SlideMove", "HopMove", "PassMove",
	"MoveAgain", "Priority", "Promotion",
	"Capture", "HopCapture", "ReplacementCapture", "CustodialCapture", "Flip",
	"Visited", "Repetition", "PositionalRepetition", "SituationalRepetition",
	"NoMoves", "NoPieces", "Scoring", "Counter",
	"WinEnd", "LossEnd", "DrawEnd",
}

// Count is the size of the vocabulary.
const Count = int(numConcepts)

func (c Concept) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Set is a set of concepts. The zero value is empty; all operations
// return fresh sets.
type Set struct {
	bits *bitset.BitSet
}

// Of builds a set from individual concepts.
func Of(cs ...Concept) Set {
	b := bitset.New(uint(numConcepts))
	for _, c := range cs {
		b.Set(uint(c))
	}
	return Set{bits: b}
}

func (s Set) set() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(uint(numConcepts))
	}
	return s.bits
}

func (s Set) Has(c Concept) bool {
	return s.bits != nil && s.bits.Test(uint(c))
}

func (s Set) Union(o Set) Set {
	if o.bits == nil {
		return s
	}
	if s.bits == nil {
		return o
	}
	return Set{bits: s.bits.Union(o.bits)}
}

// Without returns s minus the given concepts.
func (s Set) Without(cs ...Concept) Set {
	return Set{bits: s.set().Difference(Of(cs...).set())}
}

func (s Set) Equal(o Set) bool {
	return s.set().SymmetricDifference(o.set()).None()
}

func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// List returns the concepts in declaration order.
func (s Set) List() []Concept {
	var out []Concept
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, Concept(i))
	}
	return out
}

// Names returns the concept names, in declaration order.
func (s Set) Names() []string {
	list := s.List()
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.String()
	}
	return out
}

func (s Set) String() string {
	return "[" + strings.Join(s.Names(), " ") + "]"
}
