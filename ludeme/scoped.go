package ludeme

import "github.com/domino14/ludeme/game"

// Scoped prepares c for evaluating child with the registers in touched
// rebound. If touched names a state-backed register that child reads, the
// rebinding could be seen through the shared state, so Scoped returns a
// fork isolating it. Otherwise it returns c itself and release puts the
// flat registers back. Either way:
//
//	sc, release := ludeme.Scoped(c, touched, child)
//	defer release()
func Scoped(c *game.Context, touched game.RegisterSet, child Ludeme) (*game.Context, func()) {
	stateBacked := touched & game.StateBacked
	if !stateBacked.IsEmpty() && child.ReadsEvalContextRecursive().Intersects(stateBacked) {
		return c.Fork(game.IsolateVisited), func() {}
	}
	saved := c.Registers()
	return c, func() { c.SetRegisters(saved) }
}

// NeedsIsolation is true if evaluating child could observe a change to any
// register in touched.
func NeedsIsolation(touched game.RegisterSet, child Ludeme) bool {
	return child.ReadsEvalContextRecursive().Intersects(touched)
}
