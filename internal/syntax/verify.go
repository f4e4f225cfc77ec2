package syntax

import (
	"fmt"
	"strings"
)

// Verify checks the shape of a tree: leaves have no children, unary
// operations only a left child, binary operations both children, and no
// node is reachable twice. It returns an error describing all
// violations found, or nil if the tree is well formed.
func Verify(root *Node) error {
	var errs []string

	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	seen := make(map[*Node]bool)
	Walk(root, func(n *Node) bool {
		if seen[n] {
			add("%s: node reachable more than once", n.Op)
			return false
		}
		seen[n] = true

		switch {
		case n.Op.IsLeaf():
			if n.Left != nil || n.Right != nil {
				add("%s: leaf has children", n.Op)
			}
		case n.Op.IsUnary():
			if n.Left == nil {
				add("%s: missing operand", n.Op)
			}
			if n.Right != nil {
				add("%s: unary operation has a right child", n.Op)
			}
		case n.Op.IsBinary():
			if n.Left == nil {
				add("%s: missing left operand", n.Op)
			}
			if n.Right == nil {
				add("%s: missing right operand", n.Op)
			}
		default:
			add("%s: unknown operation", n.Op)
		}
		return true
	})

	return combineErrors(errs)
}

func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("AST verification failed:\n  %s", strings.Join(errs, "\n  "))
}
