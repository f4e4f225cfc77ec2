package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual representation of the tree rooted at n to w.
// A nil tree prints as "Empty".
func Fprint(w io.Writer, n *Node) {
	p := &printer{w: w}
	if n == nil {
		p.printf("Empty\n")
		return
	}
	p.print(n)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(n *Node) {
	if n == nil {
		return
	}

	switch {
	case n.Op == Number:
		p.printf("Number %d\n", n.Int)

	case n.Op == Float:
		p.printf("Float %s\n", strconv.FormatFloat(n.Float, 'g', -1, 64))

	case n.Op == Ident:
		p.printf("Ident %q\n", n.Name)

	case n.Op.IsUnary():
		p.printf("%s\n", n.Op)
		p.indent++
		p.print(n.Left)
		p.indent--

	default:
		p.printf("%s\n", n.Op)
		p.indent++
		p.printf("Left:\n")
		p.indent++
		p.print(n.Left)
		p.indent--
		p.printf("Right:\n")
		p.indent++
		p.print(n.Right)
		p.indent--
		p.indent--
	}
}

// String returns an S-expression form of the tree, e.g. (Add 1 (Mul 2 x)).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Op {
	case Number:
		return strconv.FormatInt(int64(n.Int), 10)
	case Float:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case Ident:
		return n.Name
	}
	if n.Op.IsUnary() {
		return "(" + n.Op.String() + " " + n.Left.String() + ")"
	}
	return "(" + n.Op.String() + " " + n.Left.String() + " " + n.Right.String() + ")"
}
