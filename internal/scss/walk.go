package scss

// Walk visits n and its descendants in document pre-order. When fn returns
// false the children of that node are skipped; siblings are still visited.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Collect returns every node of the given kind in document order.
func Collect(n *Node, kind Kind) []*Node {
	var out []*Node
	Walk(n, func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}
