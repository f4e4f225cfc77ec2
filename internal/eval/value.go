// Package eval evaluates madx syntax trees against a variable environment.
package eval

import (
	"math"
	"strconv"
)

// Value is a numeric result: a 32-bit integer or a float.
// The zero Value is the integer 0.
type Value struct {
	isFloat bool
	i       int32
	f       float64
}

// Int returns the integer value v.
func Int(v int32) Value { return Value{i: v} }

// Float returns the float value v.
func Float(v float64) Value { return Value{isFloat: true, f: v} }

// IsFloat reports whether v is a float.
func (v Value) IsFloat() bool { return v.isFloat }

// Int returns v as an integer, truncating floats toward zero.
// Floats outside the int32 range saturate; NaN becomes 0.
func (v Value) Int() int32 {
	if !v.isFloat {
		return v.i
	}
	return truncate(v.f)
}

// Float returns v as a float.
func (v Value) Float() float64 {
	if v.isFloat {
		return v.f
	}
	return float64(v.i)
}

func (v Value) String() string {
	if v.isFloat {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return strconv.FormatInt(int64(v.i), 10)
}

// truncate converts f to the integer domain, toward zero.
func truncate(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
