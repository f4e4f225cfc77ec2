package syntax

import "fmt"

// Operation is the tag of an AST node.
type Operation uint8

const (
	// Leaves
	Number Operation = iota // integer literal: Int
	Float                   // float literal: Float
	Ident                   // variable reference: Name

	// Unary operators (Left only)
	Negate // -x
	BitNot // ~x

	// Binary operators (Left and Right)
	Mul    // *
	Div    // /
	Mod    // %
	Add    // +
	Sub    // -
	Shl    // <<
	Shr    // >>
	BitAnd // &
	BitXor // ^
	BitOr  // |

	Assign // Left must be an Ident leaf; checked when evaluated
	Glue   // joins two statements, value of Right

	operationCount
)

var operationNames = [...]string{
	Number: "Number",
	Float:  "Float",
	Ident:  "Ident",
	Negate: "Negate",
	BitNot: "BitNot",
	Mul:    "Mul",
	Div:    "Div",
	Mod:    "Mod",
	Add:    "Add",
	Sub:    "Sub",
	Shl:    "Shl",
	Shr:    "Shr",
	BitAnd: "BitAnd",
	BitXor: "BitXor",
	BitOr:  "BitOr",
	Assign: "Assign",
	Glue:   "Glue",
}

func (op Operation) String() string {
	if op < operationCount {
		return operationNames[op]
	}
	return fmt.Sprintf("Operation(%d)", op)
}

// IsLeaf reports whether op is a literal or identifier leaf.
func (op Operation) IsLeaf() bool {
	return op <= Ident
}

// IsUnary reports whether op takes exactly one (left) operand.
func (op Operation) IsUnary() bool {
	return op == Negate || op == BitNot
}

// IsBinary reports whether op takes two operands. Assign and Glue count.
func (op Operation) IsBinary() bool {
	return op >= Mul && op < operationCount
}

// Node is one node of the binary syntax tree. Each child is owned by
// exactly one parent; trees never share nodes.
type Node struct {
	Op    Operation
	Int   int32   // Number
	Float float64 // Float
	Name  string  // Ident

	Left  *Node // operand of unary ops, left operand of binary ops
	Right *Node // right operand of binary ops
}

// NewNumber returns an integer leaf.
func NewNumber(v int32) *Node {
	return &Node{Op: Number, Int: v}
}

// NewFloat returns a float leaf.
func NewFloat(v float64) *Node {
	return &Node{Op: Float, Float: v}
}

// NewIdent returns an identifier leaf.
func NewIdent(name string) *Node {
	return &Node{Op: Ident, Name: name}
}

// NewUnary returns a unary node with x as its only child.
func NewUnary(op Operation, x *Node) *Node {
	return &Node{Op: op, Left: x}
}

// NewBinary returns a binary node with children x and y.
func NewBinary(op Operation, x, y *Node) *Node {
	return &Node{Op: op, Left: x, Right: y}
}
