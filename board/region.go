package board

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Region is a set of sites. The zero value is an empty region.
// Regions handed out by rule evaluation may be cached and shared, so
// callers must treat them as read-only and use the set operations, which
// always return fresh regions.
type Region struct {
	bits *bitset.BitSet
}

// NewRegion returns a region holding the given sites. Negative sites are
// ignored.
func NewRegion(sites ...int) Region {
	r := Region{bits: &bitset.BitSet{}}
	for _, s := range sites {
		if s >= 0 {
			r.bits.Set(uint(s))
		}
	}
	return r
}

func (r Region) set() *bitset.BitSet {
	if r.bits == nil {
		return &bitset.BitSet{}
	}
	return r.bits
}

// Add adds a site in place. Only use it on a region you just created.
func (r *Region) Add(site int) {
	if site < 0 {
		return
	}
	if r.bits == nil {
		r.bits = &bitset.BitSet{}
	}
	r.bits.Set(uint(site))
}

func (r Region) Contains(site int) bool {
	if site < 0 || r.bits == nil {
		return false
	}
	return r.bits.Test(uint(site))
}

func (r Region) Count() int {
	if r.bits == nil {
		return 0
	}
	return int(r.bits.Count())
}

func (r Region) IsEmpty() bool {
	return r.bits == nil || r.bits.None()
}

// Sites returns the sites in ascending order.
func (r Region) Sites() []int {
	if r.bits == nil {
		return nil
	}
	out := make([]int, 0, r.bits.Count())
	for i, ok := r.bits.NextSet(0); ok; i, ok = r.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func (r Region) Union(o Region) Region {
	return Region{bits: r.set().Union(o.set())}
}

func (r Region) Intersection(o Region) Region {
	return Region{bits: r.set().Intersection(o.set())}
}

func (r Region) Difference(o Region) Region {
	return Region{bits: r.set().Difference(o.set())}
}

// Equal compares membership only; trailing capacity is irrelevant.
func (r Region) Equal(o Region) bool {
	return r.set().SymmetricDifference(o.set()).None()
}

func (r Region) Clone() Region {
	return Region{bits: r.set().Clone()}
}

func (r Region) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, s := range r.Sites() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(s))
	}
	sb.WriteString("}")
	return sb.String()
}
