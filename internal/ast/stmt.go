package ast

import (
	"strings"

	"github.com/loxi-lang/loxi/internal/lexer"
)

// VarDeclStmt declares a new variable in the current scope, optionally
// with an initializer. A missing initializer yields Nil (spec.md §4.3).
type VarDeclStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if absent
}

func (s *VarDeclStmt) stmtNode()           {}
func (s *VarDeclStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *VarDeclStmt) Pos() lexer.Position  { return s.Name.Pos }
func (s *VarDeclStmt) String() string {
	if s.Initializer == nil {
		return "var " + s.Name.Lexeme + ";"
	}
	return "var " + s.Name.Lexeme + " = " + s.Initializer.String() + ";"
}

// ExprStmt evaluates an expression for its side effects and discards the
// result.
type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) stmtNode()            {}
func (s *ExprStmt) TokenLiteral() string { return s.Expression.TokenLiteral() }
func (s *ExprStmt) Pos() lexer.Position  { return s.Expression.Pos() }
func (s *ExprStmt) String() string       { return s.Expression.String() + ";" }

// PrintStmt evaluates an expression and writes its stringified form to
// stdout with a trailing newline.
type PrintStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *PrintStmt) Pos() lexer.Position  { return s.Keyword.Pos }
func (s *PrintStmt) String() string       { return "print " + s.Value.String() + ";" }

// BlockStmt introduces a new lexical scope around a sequence of
// statements.
type BlockStmt struct {
	LeftBrace  lexer.Token
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()            {}
func (s *BlockStmt) TokenLiteral() string { return s.LeftBrace.Lexeme }
func (s *BlockStmt) Pos() lexer.Position  { return s.LeftBrace.Pos }
func (s *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, st := range s.Statements {
		sb.WriteString(st.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Keyword   lexer.Token
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

func (s *IfStmt) stmtNode()            {}
func (s *IfStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *IfStmt) Pos() lexer.Position  { return s.Keyword.Pos }
func (s *IfStmt) String() string {
	out := "if (" + s.Condition.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// WhileStmt loops over Body while Condition remains truthy. Desugared
// `for` loops compile down to this node (spec.md §4.1).
type WhileStmt struct {
	Keyword   lexer.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode()            {}
func (s *WhileStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *WhileStmt) Pos() lexer.Position  { return s.Keyword.Pos }
func (s *WhileStmt) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// FunctionStmt declares a named function or method. Params are plain
// identifier tokens; the Language has no parameter type annotations.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode()            {}
func (s *FunctionStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *FunctionStmt) Pos() lexer.Position  { return s.Name.Pos }
func (s *FunctionStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return "fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") { ... }"
}

// ReturnStmt unwinds the current call with an optional value. A bare
// `return;` yields Nil except inside an initializer, where it yields
// `this` (spec.md §4.3).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) stmtNode()            {}
func (s *ReturnStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *ReturnStmt) Pos() lexer.Position  { return s.Keyword.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// ClassStmt declares a class, its optional superclass, and its methods.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable // nil if absent
	Methods    []*FunctionStmt
}

func (s *ClassStmt) stmtNode()            {}
func (s *ClassStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *ClassStmt) Pos() lexer.Position  { return s.Name.Pos }
func (s *ClassStmt) String() string {
	var sb strings.Builder
	sb.WriteString("class " + s.Name.Lexeme)
	if s.Superclass != nil {
		sb.WriteString(" < " + s.Superclass.String())
	}
	sb.WriteString(" { ")
	for _, m := range s.Methods {
		sb.WriteString(m.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
