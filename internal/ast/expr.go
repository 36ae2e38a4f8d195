package ast

import (
	"fmt"
	"strings"

	"github.com/loxi-lang/loxi/internal/lexer"
)

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	id    ID
	Token lexer.Token
	Value any // float64, string, bool, or nil
}

func NewLiteral(token lexer.Token, value any) *Literal {
	return &Literal{id: NewID(), Token: token, Value: value}
}

func (e *Literal) exprNode()              {}
func (e *Literal) ID() ID                 { return e.id }
func (e *Literal) TokenLiteral() string   { return e.Token.Lexeme }
func (e *Literal) Pos() lexer.Position    { return e.Token.Pos }
func (e *Literal) String() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.Value)
}

// Variable references a name that must resolve to a binding in scope.
type Variable struct {
	id   ID
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{id: NewID(), Name: name}
}

func (e *Variable) exprNode()            {}
func (e *Variable) ID() ID               { return e.id }
func (e *Variable) TokenLiteral() string { return e.Name.Lexeme }
func (e *Variable) Pos() lexer.Position  { return e.Name.Pos }
func (e *Variable) String() string       { return e.Name.Lexeme }

// Grouping is a parenthesized expression, kept distinct so printers can
// reproduce the parentheses.
type Grouping struct {
	id    ID
	Paren lexer.Token
	Inner Expr
}

func NewGrouping(paren lexer.Token, inner Expr) *Grouping {
	return &Grouping{id: NewID(), Paren: paren, Inner: inner}
}

func (e *Grouping) exprNode()            {}
func (e *Grouping) ID() ID               { return e.id }
func (e *Grouping) TokenLiteral() string { return e.Paren.Lexeme }
func (e *Grouping) Pos() lexer.Position  { return e.Paren.Pos }
func (e *Grouping) String() string       { return "(" + e.Inner.String() + ")" }

// Unary is a prefix operator application: `-x` or `!x`.
type Unary struct {
	id       ID
	Operator lexer.Token
	Right    Expr
}

func NewUnary(operator lexer.Token, right Expr) *Unary {
	return &Unary{id: NewID(), Operator: operator, Right: right}
}

func (e *Unary) exprNode()            {}
func (e *Unary) ID() ID               { return e.id }
func (e *Unary) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Unary) Pos() lexer.Position  { return e.Operator.Pos }
func (e *Unary) String() string       { return "(" + e.Operator.Lexeme + e.Right.String() + ")" }

// Binary is an infix arithmetic, equality, or comparison operation.
type Binary struct {
	id       ID
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewBinary(left Expr, operator lexer.Token, right Expr) *Binary {
	return &Binary{id: NewID(), Left: left, Operator: operator, Right: right}
}

func (e *Binary) exprNode()            {}
func (e *Binary) ID() ID               { return e.id }
func (e *Binary) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Binary) Pos() lexer.Position  { return e.Operator.Pos }
func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Lexeme + " " + e.Right.String() + ")"
}

// Logical is `and`/`or`, kept distinct from Binary because of
// short-circuit evaluation (spec.md §4.3).
type Logical struct {
	id       ID
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewLogical(left Expr, operator lexer.Token, right Expr) *Logical {
	return &Logical{id: NewID(), Left: left, Operator: operator, Right: right}
}

func (e *Logical) exprNode()            {}
func (e *Logical) ID() ID               { return e.id }
func (e *Logical) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Logical) Pos() lexer.Position  { return e.Operator.Pos }
func (e *Logical) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Lexeme + " " + e.Right.String() + ")"
}

// Assign writes a new value to an already-declared variable.
type Assign struct {
	id    ID
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{id: NewID(), Name: name, Value: value}
}

func (e *Assign) exprNode()            {}
func (e *Assign) ID() ID               { return e.id }
func (e *Assign) TokenLiteral() string { return e.Name.Lexeme }
func (e *Assign) Pos() lexer.Position  { return e.Name.Pos }
func (e *Assign) String() string       { return e.Name.Lexeme + " = " + e.Value.String() }

// Call invokes a function or class value with the given arguments. Paren
// is the closing `)`, kept for error reporting (spec.md §4.3).
type Call struct {
	id     ID
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{id: NewID(), Callee: callee, Paren: paren, Args: args}
}

func (e *Call) exprNode()            {}
func (e *Call) ID() ID               { return e.id }
func (e *Call) TokenLiteral() string { return e.Paren.Lexeme }
func (e *Call) Pos() lexer.Position  { return e.Paren.Pos }
func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Get reads a field or method off an instance: `object.name`.
type Get struct {
	id     ID
	Object Expr
	Name   lexer.Token
}

func NewGet(object Expr, name lexer.Token) *Get {
	return &Get{id: NewID(), Object: object, Name: name}
}

func (e *Get) exprNode()            {}
func (e *Get) ID() ID               { return e.id }
func (e *Get) TokenLiteral() string { return e.Name.Lexeme }
func (e *Get) Pos() lexer.Position  { return e.Name.Pos }
func (e *Get) String() string       { return e.Object.String() + "." + e.Name.Lexeme }

// Set writes a field on an instance: `object.name = value`.
type Set struct {
	id     ID
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func NewSet(object Expr, name lexer.Token, value Expr) *Set {
	return &Set{id: NewID(), Object: object, Name: name, Value: value}
}

func (e *Set) exprNode()            {}
func (e *Set) ID() ID               { return e.id }
func (e *Set) TokenLiteral() string { return e.Name.Lexeme }
func (e *Set) Pos() lexer.Position  { return e.Name.Pos }
func (e *Set) String() string {
	return e.Object.String() + "." + e.Name.Lexeme + " = " + e.Value.String()
}

// This refers to the implicit receiver inside a method body.
type This struct {
	id      ID
	Keyword lexer.Token
}

func NewThis(keyword lexer.Token) *This {
	return &This{id: NewID(), Keyword: keyword}
}

func (e *This) exprNode()            {}
func (e *This) ID() ID               { return e.id }
func (e *This) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *This) Pos() lexer.Position  { return e.Keyword.Pos }
func (e *This) String() string       { return "this" }

// Super refers to a named method on the enclosing class's superclass.
type Super struct {
	id      ID
	Keyword lexer.Token
	Method  lexer.Token
}

func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{id: NewID(), Keyword: keyword, Method: method}
}

func (e *Super) exprNode()            {}
func (e *Super) ID() ID               { return e.id }
func (e *Super) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *Super) Pos() lexer.Position  { return e.Keyword.Pos }
func (e *Super) String() string       { return "super." + e.Method.Lexeme }
