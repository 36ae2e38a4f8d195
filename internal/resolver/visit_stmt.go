package resolver

import "github.com/loxi-lang/loxi/internal/ast"

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(stmt.Statements)
		r.endScope()

	case *ast.VarDeclStmt:
		r.declare(stmt.Name)
		if stmt.Initializer != nil {
			// Always resolved, regardless of what the initializer looks
			// like (spec.md §9 Open Questions resolves this explicitly).
			r.resolveExpr(stmt.Initializer)
		}
		r.define(stmt.Name)

	case *ast.ExprStmt:
		r.resolveExpr(stmt.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(stmt.Value)

	case *ast.IfStmt:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.Then)
		if stmt.Else != nil {
			r.resolveStmt(stmt.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.Body)

	case *ast.FunctionStmt:
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, functionFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.reportAt(stmt.Keyword.Pos, "Can't return from top-level code.")
		}
		if stmt.Value != nil {
			if r.currentFunction == functionInitializer {
				r.reportAt(stmt.Keyword.Pos, "Can't return a value from an initializer.")
			}
			r.resolveExpr(stmt.Value)
		}

	case *ast.ClassStmt:
		r.resolveClass(stmt)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(stmt *ast.FunctionStmt, ft functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft

	r.beginScope()
	for _, param := range stmt.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(stmt.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.reportAt(stmt.Superclass.Name.Pos, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		ft := functionMethod
		if method.Name.Lexeme == "init" {
			ft = functionInitializer
		}
		r.resolveFunction(method, ft)
	}

	r.endScope() // "this"

	if stmt.Superclass != nil {
		r.endScope() // "super"
	}

	r.currentClass = enclosingClass
}
