// Package interp implements the tree-walking evaluator: the runtime value
// model, the environment chain, the callable model (functions, classes,
// instances), and the visitor that executes a resolved program
// (spec.md §3, §4.3, §4.4).
package interp

import (
	"fmt"
	"strconv"
)

// Value is the Language's tagged runtime value: Nil, Bool, Number, String,
// or a Callable (Function, Class, or Instance) (spec.md §3).
type Value interface {
	// Type is a short tag used in diagnostics ("nil", "boolean", "number",
	// "string", "function", "class", "instance").
	Type() string
	// String renders the value the way `print` does (spec.md §4.3).
	String() string
}

// Nil is the Language's absence-of-value. There is exactly one: use the
// package-level NilValue.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the single Nil instance; compare with ==.
var NilValue = Nil{}

// Bool wraps a boolean value.
type Bool bool

func (b Bool) Type() string { return "boolean" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is the Language's only numeric type: an IEEE-754 double
// (spec.md §3 — "no numeric tower" per the Non-goals).
type Number float64

func (n Number) Type() string { return "number" }

// String formats integral numbers without a trailing ".0", matching the
// Language's `print` convention (spec.md §4.3).
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is the Language's text type.
type String string

func (s String) Type() string   { return "string" }
func (s String) String() string { return string(s) }

// isTruthy implements the Language's truthiness rule: Nil and Bool(false)
// are falsy, everything else (including 0 and "") is truthy (spec.md §3).
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(val)
	default:
		return true
	}
}

// valuesEqual implements the Language's equality rule: structural for
// Nil/Bool/Number/String (NaN not equal to itself), identity for
// callables/instances (spec.md §3).
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		if av != av || bv != bv { // NaN
			return false
		}
		return av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders any Value as `print` would, including callables and
// instances via their canonical forms (spec.md §4.3, §4.4).
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// describeValue formats a value together with its dynamic type. No
// runtime error message uses it.
func describeValue(v Value) string {
	return fmt.Sprintf("%s (%s)", stringify(v), v.Type())
}
