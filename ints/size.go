package ints

import (
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

type SizeType uint8

const (
	SizeArray SizeType = iota
	SizeRegion
	SizeStack
)

type SizeParams struct {
	Array  ludeme.IntArrayFunction
	Region ludeme.RegionFunction
	Site   ludeme.IntFunction
}

// SizeDispatcher is the entry point of the Size family. It must never be
// evaluated itself.
type SizeDispatcher struct {
	ludeme.Base
}

func (d *SizeDispatcher) Eval(*game.Context) int {
	ludeme.Misuse(d, "Eval")
	return 0
}

func Size(t SizeType, p SizeParams) (ludeme.IntFunction, error) {
	return (&SizeDispatcher{}).Construct(t, p)
}

func (d *SizeDispatcher) Construct(t SizeType, p SizeParams) (ludeme.IntFunction, error) {
	err := ludeme.ExactlyOne("Size",
		ludeme.P("array", p.Array != nil),
		ludeme.P("region", p.Region != nil),
		ludeme.P("site", p.Site != nil))
	if err != nil {
		return nil, err
	}
	switch t {
	case SizeArray:
		if p.Array == nil {
			return nil, ludeme.Illegal("Size Array", "needs an array")
		}
		return NewSizeArray(p.Array), nil
	case SizeRegion:
		if p.Region == nil {
			return nil, ludeme.Illegal("Size Region", "needs a region")
		}
		return NewCountSites(p.Region), nil
	case SizeStack:
		if p.Site == nil {
			return nil, ludeme.Illegal("Size Stack", "needs a site")
		}
		return NewSizeStack(p.Site), nil
	}
	return nil, ludeme.Illegal("Size", "unknown type %d", t)
}

type SizeOfArray struct {
	ludeme.Base
	array  ludeme.IntArrayFunction
	folded ludeme.Cell[int]
}

func NewSizeArray(array ludeme.IntArrayFunction) *SizeOfArray {
	return &SizeOfArray{Base: ludeme.NewBase(ludeme.Traits{}, array), array: array}
}

func (n *SizeOfArray) Eval(c *game.Context) int {
	if v, ok := n.folded.Get(); ok {
		return v
	}
	return n.eval(c)
}

func (n *SizeOfArray) eval(c *game.Context) int {
	return len(n.array.Eval(c))
}

func (n *SizeOfArray) Preprocess(g *game.Game) { ludeme.Fold(g, n, &n.folded, n.eval) }

// SizeOfStack is the stack height of a site; 0 for empty or off-board
// sites.
type SizeOfStack struct {
	ludeme.Base
	site ludeme.IntFunction
}

func NewSizeStack(site ludeme.IntFunction) *SizeOfStack {
	return &SizeOfStack{Base: ludeme.NewBase(ludeme.Traits{Dynamic: true, Flags: game.FlagStacking}, site), site: site}
}

func (n *SizeOfStack) Eval(c *game.Context) int {
	return c.State().StackSize(n.site.Eval(c))
}

func (n *SizeOfStack) MissingRequirement(g *game.Game) bool {
	missing := n.Base.MissingRequirement(g)
	if ludeme.Require(g, g.IsStacking(), n, "measures a stack in a game without stacking") {
		missing = true
	}
	return missing
}
