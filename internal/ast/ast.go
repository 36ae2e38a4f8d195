// Package ast defines the Language's abstract syntax tree: the expression
// and statement node types the parser builds and the resolver/evaluator
// walk.
package ast

import (
	"strings"
	"sync/atomic"

	"github.com/loxi-lang/loxi/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal text of the token the node is
	// anchored to, for debugging.
	TokenLiteral() string
	// String renders the node for debugging and AST dumps.
	String() string
	// Pos returns the node's source position, for error reporting.
	Pos() lexer.Position
}

// Expr is any node that produces a Value at evaluation time.
type Expr interface {
	Node
	exprNode()
	// ID returns the node's process-wide unique identity. The resolver
	// keys its side table by ID, not by structural equality: two
	// syntactically identical variable references in different source
	// positions resolve independently (spec.md §9).
	ID() ID
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// ID is a node's process-wide unique identity, assigned once at
// construction and never reused.
type ID int64

var nextID int64

// NewID hands out the next node identity. A relaxed atomic counter is
// sufficient here: parsing is single-threaded, but using Add keeps the
// allocator safe if that ever changes (spec.md §9 design notes).
func NewID() ID {
	return ID(atomic.AddInt64(&nextID, 1))
}

// Program is the root of a parsed source file: a flat list of top-level
// statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}
