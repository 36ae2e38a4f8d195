// Package parser implements a recursive-descent parser that turns a
// Language token stream into a statement tree (spec.md §4.1).
package parser

import (
	"fmt"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// maxArgs is the limit on call argument / function parameter counts. The
// Language's own spec treats exceeding it as a warning, not a fatal error
// (spec.md §4.1), so parsing continues.
const maxArgs = 255

// ParseError is a single syntax error recorded during parsing. The parser
// keeps going after recording one (panic-mode recovery, spec.md §4.1), so a
// single run can report several.
type ParseError struct {
	Message string
	Pos     lexer.Position
	AtEnd   bool
	Lexeme  string
}

func (e *ParseError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("[Line %d] Error at end: %s", e.Pos.Line, e.Message)
	}
	return fmt.Sprintf("[Line %d] Error at '%s': %s", e.Pos.Line, e.Lexeme, e.Message)
}

// Parser turns a flat token slice into a Program. Tokens must end with an
// EOF token.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []*ParseError
}

// New collects every token out of l (including the trailing EOF) and
// returns a Parser ready to parse them.
func New(l *lexer.Lexer) *Parser {
	var tokens []lexer.Token
	for {
		t := l.NextToken()
		tokens = append(tokens, t)
		if t.Type == lexer.EOF {
			break
		}
	}
	return &Parser{tokens: tokens}
}

// NewFromTokens builds a Parser directly from an already-scanned token
// slice, for callers that hand-construct input.
func NewFromTokens(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every syntax error recorded during the last ParseProgram
// call, in source order.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// ParseProgram parses the entire token stream into a Program. Check
// Errors() afterward: spec.md §4.1 says the driver must suppress
// resolution and evaluation if parsing recorded any error.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program
}

// ---- token cursor helpers ----

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected token type or records a recoverable
// parse error anchored at the current token.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	return p.peek()
}

func (p *Parser) errorAt(tok lexer.Token, message string) {
	pe := &ParseError{Message: message, Pos: tok.Pos, Lexeme: tok.Lexeme}
	if tok.Type == lexer.EOF {
		pe.AtEnd = true
	}
	p.errors = append(p.errors, pe)
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error doesn't cascade into spurious ones
// (spec.md §4.1).
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
