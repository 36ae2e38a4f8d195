package astjson

import "github.com/loxi-lang/loxi/internal/ast"

func stmtNode(s ast.Stmt) map[string]any {
	switch stmt := s.(type) {
	case *ast.VarDeclStmt:
		node := map[string]any{"kind": "VarDecl", "name": stmt.Name.Lexeme}
		if stmt.Initializer != nil {
			node["initializer"] = exprNode(stmt.Initializer)
		}
		return node

	case *ast.ExprStmt:
		return map[string]any{"kind": "ExprStmt", "expression": exprNode(stmt.Expression)}

	case *ast.PrintStmt:
		return map[string]any{"kind": "Print", "value": exprNode(stmt.Value)}

	case *ast.BlockStmt:
		return map[string]any{"kind": "Block", "statements": stmtList(stmt.Statements)}

	case *ast.IfStmt:
		node := map[string]any{
			"kind":      "If",
			"condition": exprNode(stmt.Condition),
			"then":      stmtNode(stmt.Then),
		}
		if stmt.Else != nil {
			node["else"] = stmtNode(stmt.Else)
		}
		return node

	case *ast.WhileStmt:
		return map[string]any{
			"kind":      "While",
			"condition": exprNode(stmt.Condition),
			"body":      stmtNode(stmt.Body),
		}

	case *ast.FunctionStmt:
		return functionNode(stmt)

	case *ast.ReturnStmt:
		node := map[string]any{"kind": "Return"}
		if stmt.Value != nil {
			node["value"] = exprNode(stmt.Value)
		}
		return node

	case *ast.ClassStmt:
		methods := make([]any, len(stmt.Methods))
		for i, m := range stmt.Methods {
			methods[i] = functionNode(m)
		}
		node := map[string]any{"kind": "Class", "name": stmt.Name.Lexeme, "methods": methods}
		if stmt.Superclass != nil {
			node["superclass"] = exprNode(stmt.Superclass)
		}
		return node

	default:
		panic("astjson: unhandled statement type")
	}
}

func functionNode(fn *ast.FunctionStmt) map[string]any {
	params := make([]any, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Lexeme
	}
	return map[string]any{
		"kind":   "Function",
		"name":   fn.Name.Lexeme,
		"params": params,
		"body":   stmtList(fn.Body),
	}
}

func stmtList(statements []ast.Stmt) []any {
	out := make([]any, len(statements))
	for i, s := range statements {
		out[i] = stmtNode(s)
	}
	return out
}

func exprNode(e ast.Expr) map[string]any {
	switch expr := e.(type) {
	case *ast.Literal:
		return map[string]any{"kind": "Literal", "id": int64(expr.ID()), "value": expr.Value}

	case *ast.Variable:
		return map[string]any{"kind": "Variable", "id": int64(expr.ID()), "name": expr.Name.Lexeme}

	case *ast.Grouping:
		return map[string]any{"kind": "Grouping", "id": int64(expr.ID()), "inner": exprNode(expr.Inner)}

	case *ast.Unary:
		return map[string]any{
			"kind": "Unary", "id": int64(expr.ID()),
			"operator": expr.Operator.Lexeme, "right": exprNode(expr.Right),
		}

	case *ast.Binary:
		return map[string]any{
			"kind": "Binary", "id": int64(expr.ID()),
			"operator": expr.Operator.Lexeme,
			"left":     exprNode(expr.Left), "right": exprNode(expr.Right),
		}

	case *ast.Logical:
		return map[string]any{
			"kind": "Logical", "id": int64(expr.ID()),
			"operator": expr.Operator.Lexeme,
			"left":     exprNode(expr.Left), "right": exprNode(expr.Right),
		}

	case *ast.Assign:
		return map[string]any{
			"kind": "Assign", "id": int64(expr.ID()),
			"name": expr.Name.Lexeme, "value": exprNode(expr.Value),
		}

	case *ast.Call:
		args := make([]any, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = exprNode(a)
		}
		return map[string]any{"kind": "Call", "id": int64(expr.ID()), "callee": exprNode(expr.Callee), "args": args}

	case *ast.Get:
		return map[string]any{
			"kind": "Get", "id": int64(expr.ID()),
			"object": exprNode(expr.Object), "name": expr.Name.Lexeme,
		}

	case *ast.Set:
		return map[string]any{
			"kind": "Set", "id": int64(expr.ID()),
			"object": exprNode(expr.Object), "name": expr.Name.Lexeme, "value": exprNode(expr.Value),
		}

	case *ast.This:
		return map[string]any{"kind": "This", "id": int64(expr.ID())}

	case *ast.Super:
		return map[string]any{"kind": "Super", "id": int64(expr.ID()), "method": expr.Method.Lexeme}

	default:
		panic("astjson: unhandled expression type")
	}
}
