package parser

import (
	"testing"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return prog
}

func TestParseVarDeclWithInitializer(t *testing.T) {
	prog := parseProgram(t, `var a = 1 + 2;`)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VarDeclStmt)
	if !ok {
		t.Fatalf("expected *ast.VarDeclStmt, got %T", prog.Statements[0])
	}
	if decl.Name.Lexeme != "a" {
		t.Fatalf("expected name 'a', got %q", decl.Name.Lexeme)
	}
	if decl.Initializer == nil {
		t.Fatalf("expected initializer")
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog := parseProgram(t, `for (var i = 0; i < 5; i = i + 1) print i;`)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	block, ok := prog.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected desugared *ast.BlockStmt, got %T", prog.Statements[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected init + while, got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarDeclStmt); !ok {
		t.Fatalf("expected first statement to be the initializer, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected second statement to be *ast.WhileStmt, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected while body to be a block combining body+increment, got %T", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected body + increment, got %d statements", len(body.Statements))
	}
}

func TestParseForWithMissingConditionDefaultsTrue(t *testing.T) {
	prog := parseProgram(t, `for (;;) print 1;`)
	whileStmt := prog.Statements[0].(*ast.WhileStmt)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	if !ok || lit.Value != true {
		t.Fatalf("expected literal `true` condition, got %#v", whileStmt.Condition)
	}
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	prog := parseProgram(t, `class B < A { say() { print "hi"; } }`)
	cls := prog.Statements[0].(*ast.ClassStmt)
	if cls.Name.Lexeme != "B" {
		t.Fatalf("expected class name B, got %q", cls.Name.Lexeme)
	}
	if cls.Superclass == nil || cls.Superclass.Name.Lexeme != "A" {
		t.Fatalf("expected superclass A")
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name.Lexeme != "say" {
		t.Fatalf("expected one method named say, got %#v", cls.Methods)
	}
}

func TestAssignmentToNonTargetIsSyntaxError(t *testing.T) {
	p := New(lexer.New(`1 + 2 = 3;`))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a syntax error for invalid assignment target")
	}
}

func TestMultipleParseErrorsAreAllRecorded(t *testing.T) {
	p := New(lexer.New(`var ;
var ;
var ;`))
	p.ParseProgram()
	if len(p.Errors()) != 3 {
		t.Fatalf("expected 3 parse errors (one per bad decl), got %d: %v", len(p.Errors()), p.Errors())
	}
}

func TestErrorAtEOFReportsAtEnd(t *testing.T) {
	p := New(lexer.New(`var a =`))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parse error")
	}
	last := p.Errors()[len(p.Errors())-1]
	if !last.AtEnd {
		t.Fatalf("expected the trailing error to be anchored at EOF")
	}
}

func TestGetAndSetExpressions(t *testing.T) {
	prog := parseProgram(t, `a.b.c = 1;`)
	exprStmt := prog.Statements[0].(*ast.ExprStmt)
	set, ok := exprStmt.Expression.(*ast.Set)
	if !ok {
		t.Fatalf("expected *ast.Set, got %T", exprStmt.Expression)
	}
	if _, ok := set.Object.(*ast.Get); !ok {
		t.Fatalf("expected set.Object to be a Get, got %T", set.Object)
	}
}
