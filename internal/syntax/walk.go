package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(n *Node) bool

// Walk traverses a tree in depth-first order, left child first.
// If visitor returns false, children are not visited.
func Walk(n *Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	Walk(n.Left, v)
	Walk(n.Right, v)
}
