package eval

import (
	"fmt"

	"github.com/you-not-fish/madx/internal/syntax"
)

// ErrorKind classifies an EvalError.
type ErrorKind uint8

const (
	Undefined ErrorKind = iota
	NotIdent
	DivisionByZero
	ShiftRange
	InvalidNode
)

// EvalError is a failure while evaluating a tree. It aborts the
// statement being evaluated; the environment keeps earlier bindings.
type EvalError struct {
	Kind  ErrorKind
	Name  string           // Undefined
	Op    syntax.Operation // DivisionByZero, ShiftRange, InvalidNode; zero for a nil node
	Count int32            // ShiftRange
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case Undefined:
		return fmt.Sprintf("Eval Error: %s is not defined", e.Name)
	case NotIdent:
		return "Eval Error: left is not IDENT"
	case DivisionByZero:
		return fmt.Sprintf("Eval Error: division by zero in %s", e.Op)
	case ShiftRange:
		return fmt.Sprintf("Eval Error: shift count %d out of range in %s", e.Count, e.Op)
	case InvalidNode:
		if e.Op.IsLeaf() {
			return "Eval Error: missing node"
		}
		return fmt.Sprintf("Eval Error: malformed %s node", e.Op)
	}
	return fmt.Sprintf("Eval Error: kind(%d)", e.Kind)
}

// Is reports whether target is an *EvalError of the same kind.
// An Undefined target with a Name also requires the same name.
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	if t.Kind == Undefined && t.Name != "" {
		return t.Name == e.Name
	}
	return true
}

// Sentinels for errors.Is.
var (
	ErrUndefined      = &EvalError{Kind: Undefined}
	ErrNotIdent       = &EvalError{Kind: NotIdent}
	ErrDivisionByZero = &EvalError{Kind: DivisionByZero}
	ErrShiftRange     = &EvalError{Kind: ShiftRange}
	ErrInvalidNode    = &EvalError{Kind: InvalidNode}
)
