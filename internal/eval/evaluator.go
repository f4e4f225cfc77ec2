package eval

import (
	"math"

	"github.com/you-not-fish/madx/internal/syntax"
)

// Evaluate computes the value of the tree n, reading and assigning
// variables in env. Children are evaluated before their parent, left
// before right. The first failure aborts the whole evaluation.
func Evaluate(n *syntax.Node, env *Env) (Value, error) {
	if n == nil {
		return Value{}, &EvalError{Kind: InvalidNode}
	}

	switch {
	case n.Op == syntax.Number:
		return Int(n.Int), nil

	case n.Op == syntax.Float:
		return Float(n.Float), nil

	case n.Op == syntax.Ident:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return Value{}, &EvalError{Kind: Undefined, Name: n.Name}
		}
		return v, nil

	case n.Op == syntax.Assign:
		return assign(n, env)

	case n.Op == syntax.Glue:
		if n.Left == nil || n.Right == nil {
			return Value{}, &EvalError{Kind: InvalidNode, Op: n.Op}
		}
		// value of a compound statement is its last statement's value
		if _, err := Evaluate(n.Left, env); err != nil {
			return Value{}, err
		}
		return Evaluate(n.Right, env)

	case n.Op.IsUnary():
		if n.Left == nil || n.Right != nil {
			return Value{}, &EvalError{Kind: InvalidNode, Op: n.Op}
		}
		x, err := Evaluate(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		return unary(n.Op, x), nil

	case n.Op.IsBinary():
		if n.Left == nil || n.Right == nil {
			return Value{}, &EvalError{Kind: InvalidNode, Op: n.Op}
		}
		x, err := Evaluate(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		y, err := Evaluate(n.Right, env)
		if err != nil {
			return Value{}, err
		}
		return binary(n.Op, x, y)
	}

	return Value{}, &EvalError{Kind: InvalidNode, Op: n.Op}
}

// assign evaluates the right side, stores it under the left identifier
// and returns the stored value.
func assign(n *syntax.Node, env *Env) (Value, error) {
	if n.Left == nil || n.Right == nil {
		return Value{}, &EvalError{Kind: InvalidNode, Op: n.Op}
	}
	v, err := Evaluate(n.Right, env)
	if err != nil {
		return Value{}, err
	}
	if n.Left.Op != syntax.Ident {
		return Value{}, &EvalError{Kind: NotIdent}
	}
	env.Set(n.Left.Name, v)
	stored, _ := env.Lookup(n.Left.Name)
	return stored, nil
}

func unary(op syntax.Operation, x Value) Value {
	switch op {
	case syntax.Negate:
		if x.IsFloat() {
			return Float(-x.Float())
		}
		return Int(-x.Int())
	default: // BitNot
		if x.IsFloat() {
			return Float(float64(^x.Int()))
		}
		return Int(^x.Int())
	}
}

// binary applies op to x and y. Two integers combine with 32-bit
// wraparound. If either side is a float the arithmetic operators work on
// floats, while bitwise and shift operators truncate both sides to
// integers and convert the result back to a float.
func binary(op syntax.Operation, x, y Value) (Value, error) {
	switch op {
	case syntax.Shl, syntax.Shr, syntax.BitAnd, syntax.BitOr, syntax.BitXor:
		r, err := bitwise(op, x.Int(), y.Int())
		if err != nil {
			return Value{}, err
		}
		if x.IsFloat() || y.IsFloat() {
			return Float(float64(r)), nil
		}
		return Int(r), nil
	}

	if x.IsFloat() || y.IsFloat() {
		a, b := x.Float(), y.Float()
		switch op {
		case syntax.Add:
			return Float(a + b), nil
		case syntax.Sub:
			return Float(a - b), nil
		case syntax.Mul:
			return Float(a * b), nil
		case syntax.Div:
			return Float(a / b), nil
		case syntax.Mod:
			return Float(math.Mod(a, b)), nil
		}
		return Value{}, &EvalError{Kind: InvalidNode, Op: op}
	}

	a, b := x.Int(), y.Int()
	switch op {
	case syntax.Add:
		return Int(a + b), nil
	case syntax.Sub:
		return Int(a - b), nil
	case syntax.Mul:
		return Int(a * b), nil
	case syntax.Div:
		if b == 0 {
			return Value{}, &EvalError{Kind: DivisionByZero, Op: op}
		}
		return Int(a / b), nil
	case syntax.Mod:
		if b == 0 {
			return Value{}, &EvalError{Kind: DivisionByZero, Op: op}
		}
		return Int(a % b), nil
	}
	return Value{}, &EvalError{Kind: InvalidNode, Op: op}
}

func bitwise(op syntax.Operation, a, b int32) (int32, error) {
	switch op {
	case syntax.BitAnd:
		return a & b, nil
	case syntax.BitOr:
		return a | b, nil
	case syntax.BitXor:
		return a ^ b, nil
	}

	if b < 0 || b > 31 {
		return 0, &EvalError{Kind: ShiftRange, Op: op, Count: b}
	}
	if op == syntax.Shl {
		return a << b, nil
	}
	return a >> b, nil
}
