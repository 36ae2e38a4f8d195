package interp

import (
	"fmt"

	"github.com/loxi-lang/loxi/internal/ast"
)

// evalCall evaluates the callee and arguments left to right (spec.md §5
// ordering), checks arity, and invokes the callable through the call
// stack so recursion depth is tracked and a RuntimeError's trace can
// name every live call (spec.md §7, §8 "arity check").
func (in *Interp) evalCall(e *ast.Call) (Value, *RuntimeError) {
	callee, rerr := in.eval(e.Callee)
	if rerr != nil {
		return nil, rerr
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, rerr := in.eval(a)
		if rerr != nil {
			return nil, rerr
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(e.Pos(), "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, NewRuntimeError(e.Pos(), "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	name := callableName(callee)
	if overflow := in.calls.push(name, e.Pos()); overflow != nil {
		return nil, overflow
	}
	if in.trace != nil {
		fmt.Fprintf(in.trace, "[trace] %senter %s at line %d\n", traceIndent(in.calls.depth()-1), name, e.Pos().Line)
	}
	defer func() {
		if in.trace != nil {
			fmt.Fprintf(in.trace, "[trace] %sleave %s\n", traceIndent(in.calls.depth()-1), name)
		}
		in.calls.pop()
	}()

	result, rerr := callable.Call(in, args)
	if rerr != nil && len(rerr.Stack) == 0 {
		rerr.Stack = in.calls.snapshot()
	}
	return result, rerr
}

func traceIndent(depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	return indent
}

func callableName(v Value) string {
	switch c := v.(type) {
	case *Function:
		return c.Name()
	case *Class:
		return c.Name
	default:
		return v.String()
	}
}
