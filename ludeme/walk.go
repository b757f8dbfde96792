package ludeme

// Walk visits root and its descendants in pre-order, each distinct node
// once. Trees may share subtrees, so identity rather than position decides
// what has been seen. fn returning false skips the node's children.
func Walk(root Ludeme, fn func(n Ludeme, depth int) bool) {
	seen := make(map[Ludeme]struct{})
	var visit func(n Ludeme, depth int)
	visit = func(n Ludeme, depth int) {
		if n == nil {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children() {
			visit(c, depth+1)
		}
	}
	visit(root, 0)
}

// PostOrder lists the distinct nodes under root, children before parents.
func PostOrder(root Ludeme) []Ludeme {
	seen := make(map[Ludeme]struct{})
	var out []Ludeme
	var visit func(n Ludeme)
	visit = func(n Ludeme) {
		if n == nil {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		for _, c := range n.Children() {
			visit(c)
		}
		out = append(out, n)
	}
	visit(root)
	return out
}

// NumNodes counts the distinct nodes under root.
func NumNodes(root Ludeme) int {
	n := 0
	Walk(root, func(Ludeme, int) bool {
		n++
		return true
	})
	return n
}
