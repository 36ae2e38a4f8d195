package ast

import (
	"testing"

	"github.com/loxi-lang/loxi/internal/lexer"
)

func tok(typ lexer.TokenType, lexeme string) lexer.Token {
	return lexer.Token{Type: typ, Lexeme: lexeme}
}

func TestNodeIDsAreUniqueAndStable(t *testing.T) {
	a := NewVariable(tok(lexer.IDENT, "a"))
	b := NewVariable(tok(lexer.IDENT, "a"))
	if a.ID() == b.ID() {
		t.Fatalf("two distinct Variable nodes must not share an ID, got %d for both", a.ID())
	}
	if a.ID() != a.ID() {
		t.Fatalf("ID() must be stable across calls")
	}
}

func TestBinaryString(t *testing.T) {
	left := NewLiteral(tok(lexer.NUMBER, "1"), 1.0)
	right := NewLiteral(tok(lexer.NUMBER, "2"), 2.0)
	b := NewBinary(left, tok(lexer.PLUS, "+"), right)
	want := "(1 + 2)"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestProgramTokenLiteralOfEmptyProgram(t *testing.T) {
	p := &Program{}
	if p.TokenLiteral() != "" {
		t.Fatalf("expected empty TokenLiteral for empty program")
	}
}

func TestClassStmtStringIncludesSuperclass(t *testing.T) {
	cls := &ClassStmt{
		Name:       tok(lexer.IDENT, "B"),
		Superclass: NewVariable(tok(lexer.IDENT, "A")),
	}
	got := cls.String()
	if got != "class B < A { }" {
		t.Fatalf("String() = %q", got)
	}
}
