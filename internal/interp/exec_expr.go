package interp

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// eval evaluates a single expression to a Value, or faults with a
// RuntimeError (spec.md §4.3).
func (in *Interp) eval(e ast.Expr) (Value, *RuntimeError) {
	switch expr := e.(type) {
	case *ast.Literal:
		return literalValue(expr), nil
	case *ast.Variable:
		return in.evalVariable(expr)
	case *ast.Grouping:
		return in.eval(expr.Inner)
	case *ast.Unary:
		return in.evalUnary(expr)
	case *ast.Binary:
		return in.evalBinary(expr)
	case *ast.Logical:
		return in.evalLogical(expr)
	case *ast.Assign:
		return in.evalAssign(expr)
	case *ast.Call:
		return in.evalCall(expr)
	case *ast.Get:
		return in.evalGet(expr)
	case *ast.Set:
		return in.evalSet(expr)
	case *ast.This:
		return in.evalThis(expr)
	case *ast.Super:
		return in.evalSuper(expr)
	default:
		panic("interp: unhandled expression type")
	}
}

func literalValue(e *ast.Literal) Value {
	switch v := e.Value.(type) {
	case nil:
		return NilValue
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		return NilValue
	}
}

func (in *Interp) evalVariable(e *ast.Variable) (Value, *RuntimeError) {
	v, ok := in.lookUpVariable(e.ID(), e.Name.Lexeme)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "%s", undefinedVariable(e.Name.Lexeme))
	}
	return v, nil
}

func (in *Interp) evalAssign(e *ast.Assign) (Value, *RuntimeError) {
	value, rerr := in.eval(e.Value)
	if rerr != nil {
		return nil, rerr
	}
	if distance, ok := in.locals[e.ID()]; ok {
		in.environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if !in.globals.Assign(e.Name.Lexeme, value) {
		return nil, NewRuntimeError(e.Pos(), "%s", undefinedVariable(e.Name.Lexeme))
	}
	return value, nil
}

func (in *Interp) evalUnary(e *ast.Unary) (Value, *RuntimeError) {
	right, rerr := in.eval(e.Right)
	if rerr != nil {
		return nil, rerr
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, NewRuntimeError(e.Pos(), "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return Bool(!isTruthy(right)), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interp) evalLogical(e *ast.Logical) (Value, *RuntimeError) {
	left, rerr := in.eval(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	// Short-circuit: `or` returns the left operand if truthy without
	// evaluating the right; `and` returns it if falsy (spec.md §8 laws).
	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interp) evalGet(e *ast.Get) (Value, *RuntimeError) {
	obj, rerr := in.eval(e.Object)
	if rerr != nil {
		return nil, rerr
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "Only instances have properties.")
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interp) evalSet(e *ast.Set) (Value, *RuntimeError) {
	obj, rerr := in.eval(e.Object)
	if rerr != nil {
		return nil, rerr
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "Only instances have fields.")
	}
	value, rerr := in.eval(e.Value)
	if rerr != nil {
		return nil, rerr
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interp) evalThis(e *ast.This) (Value, *RuntimeError) {
	v, ok := in.lookUpVariable(e.ID(), "this")
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "%s", undefinedVariable("this"))
	}
	return v, nil
}

// evalSuper resolves `super.method` against the superclass's method
// table, then binds it to `this`. "this" always lives exactly one scope
// closer than "super" in the environment chain the resolver built
// (spec.md §4.3, verified by the resolver's scope nesting: class body
// pushes "super" then "this" then the method's own params/body scope).
func (in *Interp) evalSuper(e *ast.Super) (Value, *RuntimeError) {
	distance, ok := in.locals[e.ID()]
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "%s", undefinedVariable("super"))
	}
	superVal, ok := in.environment.GetAt(distance, "super")
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "%s", undefinedVariable("super"))
	}
	superclass := superVal.(*Class)

	thisVal, ok := in.environment.GetAt(distance-1, "this")
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "%s", undefinedVariable("this"))
	}
	instance := thisVal.(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(e.Pos(), "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
