package interp

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// evalBinary implements arithmetic, comparison, and equality (spec.md
// §4.3, §8). `+` is overloaded over numbers and strings; every other
// arithmetic/comparison operator requires both operands to be numbers.
func (in *Interp) evalBinary(e *ast.Binary) (Value, *RuntimeError) {
	left, rerr := in.eval(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	right, rerr := in.eval(e.Right)
	if rerr != nil {
		return nil, rerr
	}

	switch e.Operator.Type {
	case lexer.EQUAL_EQUAL:
		return Bool(valuesEqual(left, right)), nil
	case lexer.BANG_EQUAL:
		return Bool(!valuesEqual(left, right)), nil
	case lexer.PLUS:
		return evalPlus(left, right, e)
	case lexer.MINUS, lexer.SLASH, lexer.STAR,
		lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		return evalNumeric(e.Operator.Type, left, right, e)
	default:
		panic("interp: unhandled binary operator")
	}
}

func evalPlus(left, right Value, e *ast.Binary) (Value, *RuntimeError) {
	if ln, ok := left.(Number); ok {
		if rn, ok := right.(Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(String); ok {
		if rs, ok := right.(String); ok {
			return ls + rs, nil
		}
	}
	return nil, NewRuntimeError(e.Pos(), "Operands must be two numbers or two strings.")
}

func evalNumeric(op lexer.TokenType, left, right Value, e *ast.Binary) (Value, *RuntimeError) {
	ln, ok := left.(Number)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "Operands must be numbers.")
	}
	rn, ok := right.(Number)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "Operands must be numbers.")
	}
	switch op {
	case lexer.MINUS:
		return ln - rn, nil
	case lexer.SLASH:
		return ln / rn, nil
	case lexer.STAR:
		return ln * rn, nil
	case lexer.GREATER:
		return Bool(ln > rn), nil
	case lexer.GREATER_EQUAL:
		return Bool(ln >= rn), nil
	case lexer.LESS:
		return Bool(ln < rn), nil
	case lexer.LESS_EQUAL:
		return Bool(ln <= rn), nil
	default:
		panic("interp: unhandled numeric operator")
	}
}
