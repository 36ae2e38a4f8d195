package interp

import (
	"fmt"

	"github.com/loxi-lang/loxi/internal/ast"
)

// execute runs a single statement, returning any value produced by a
// `return` (signal == controlReturn), the signal itself, and a
// RuntimeError if evaluation faulted. Exactly one of (signal ==
// controlReturn) or (rerr != nil) or neither holds at any return point;
// never both (spec.md §7: the two non-local exits must not be
// conflated).
func (in *Interp) execute(s ast.Stmt) (Value, control, *RuntimeError) {
	switch stmt := s.(type) {
	case *ast.VarDeclStmt:
		return in.execVarDecl(stmt)
	case *ast.ExprStmt:
		_, rerr := in.eval(stmt.Expression)
		return nil, controlNone, rerr
	case *ast.PrintStmt:
		return in.execPrint(stmt)
	case *ast.BlockStmt:
		return in.executeBlock(stmt.Statements, NewEnclosedEnvironment(in.environment))
	case *ast.IfStmt:
		return in.execIf(stmt)
	case *ast.WhileStmt:
		return in.execWhile(stmt)
	case *ast.FunctionStmt:
		in.environment.Define(stmt.Name.Lexeme, NewFunction(stmt, in.environment, false))
		return nil, controlNone, nil
	case *ast.ReturnStmt:
		return in.execReturn(stmt)
	case *ast.ClassStmt:
		return in.execClass(stmt)
	default:
		panic("interp: unhandled statement type")
	}
}

func (in *Interp) execVarDecl(stmt *ast.VarDeclStmt) (Value, control, *RuntimeError) {
	value := Value(NilValue)
	if stmt.Initializer != nil {
		v, rerr := in.eval(stmt.Initializer)
		if rerr != nil {
			return nil, controlNone, rerr
		}
		value = v
	}
	in.environment.Define(stmt.Name.Lexeme, value)
	return nil, controlNone, nil
}

func (in *Interp) execPrint(stmt *ast.PrintStmt) (Value, control, *RuntimeError) {
	v, rerr := in.eval(stmt.Value)
	if rerr != nil {
		return nil, controlNone, rerr
	}
	fmt.Fprintln(in.stdout, stringify(v))
	return nil, controlNone, nil
}

func (in *Interp) execIf(stmt *ast.IfStmt) (Value, control, *RuntimeError) {
	cond, rerr := in.eval(stmt.Condition)
	if rerr != nil {
		return nil, controlNone, rerr
	}
	if isTruthy(cond) {
		return in.execute(stmt.Then)
	}
	if stmt.Else != nil {
		return in.execute(stmt.Else)
	}
	return nil, controlNone, nil
}

func (in *Interp) execWhile(stmt *ast.WhileStmt) (Value, control, *RuntimeError) {
	for {
		cond, rerr := in.eval(stmt.Condition)
		if rerr != nil {
			return nil, controlNone, rerr
		}
		if !isTruthy(cond) {
			return nil, controlNone, nil
		}
		value, signal, rerr := in.execute(stmt.Body)
		if rerr != nil || signal == controlReturn {
			return value, signal, rerr
		}
	}
}

func (in *Interp) execReturn(stmt *ast.ReturnStmt) (Value, control, *RuntimeError) {
	if stmt.Value == nil {
		return NilValue, controlReturn, nil
	}
	v, rerr := in.eval(stmt.Value)
	if rerr != nil {
		return nil, controlNone, rerr
	}
	return v, controlReturn, nil
}

func (in *Interp) execClass(stmt *ast.ClassStmt) (Value, control, *RuntimeError) {
	var superclass *Class
	if stmt.Superclass != nil {
		v, rerr := in.eval(stmt.Superclass)
		if rerr != nil {
			return nil, controlNone, rerr
		}
		sc, ok := v.(*Class)
		if !ok {
			return nil, controlNone, NewRuntimeError(stmt.Superclass.Pos(), "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(stmt.Name.Lexeme, NilValue)

	classEnv := in.environment
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(in.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(stmt.Name.Lexeme, superclass, methods)
	in.environment.Assign(stmt.Name.Lexeme, class)
	return nil, controlNone, nil
}

// executeBlock runs statements in env, then restores the evaluator's
// environment handle to whatever it was before the call, on both normal
// and error exit (spec.md §8 invariant: "execute_block leaves the
// evaluator's environment handle equal to what it was on entry").
func (in *Interp) executeBlock(statements []ast.Stmt, env *Environment) (Value, control, *RuntimeError) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		value, signal, rerr := in.execute(stmt)
		if rerr != nil || signal == controlReturn {
			return value, signal, rerr
		}
	}
	return nil, controlNone, nil
}
