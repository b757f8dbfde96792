package ludeme

import "github.com/domino14/ludeme/game"

// Cell is a write-once slot for a folded value. It is written at most
// once, during preprocessing, and only read afterwards.
type Cell[T any] struct {
	v   T
	set bool
}

func (c *Cell[T]) Get() (T, bool) {
	return c.v, c.set
}

// Set stores v unless a value is already there. It reports whether v was
// stored.
func (c *Cell[T]) Set(v T) bool {
	if c.set {
		return false
	}
	c.v, c.set = v, true
	return true
}

func (c *Cell[T]) IsSet() bool {
	return c.set
}

// Fold preprocesses the children of n and then, if n is static, evaluates
// it once against a placeholder context and stores the result in cell.
// eval must compute the value without consulting cell.
func Fold[T any](g *game.Game, n Ludeme, cell *Cell[T], eval func(*game.Context) T) {
	for _, c := range n.Children() {
		c.Preprocess(g)
	}
	if cell.IsSet() || !n.IsStatic() {
		return
	}
	cell.Set(eval(game.NewPlaceholderContext(g)))
}
