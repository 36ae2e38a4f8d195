package resolver

import "github.com/loxi-lang/loxi/internal/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch expr := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && !defined {
				r.reportAt(expr.Name.Pos, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(expr.ID(), expr.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(expr.Value)
		r.resolveLocal(expr.ID(), expr.Name.Lexeme)

	case *ast.Literal:
		// No children, no binding to resolve.

	case *ast.Grouping:
		r.resolveExpr(expr.Inner)

	case *ast.Unary:
		r.resolveExpr(expr.Right)

	case *ast.Binary:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.Logical:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.Call:
		r.resolveExpr(expr.Callee)
		for _, arg := range expr.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(expr.Object)

	case *ast.Set:
		r.resolveExpr(expr.Value)
		r.resolveExpr(expr.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.reportAt(expr.Keyword.Pos, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(expr.ID(), "this")

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.reportAt(expr.Keyword.Pos, "Can't use 'super' outside of a class.")
		case classClass:
			r.reportAt(expr.Keyword.Pos, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(expr.ID(), "super")
		}

	default:
		panic("resolver: unhandled expression type")
	}
}
