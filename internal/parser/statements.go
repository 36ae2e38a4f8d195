package parser

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// declaration → classDecl | funDecl | varDecl | statement
//
// On a syntax error inside a declaration, the parser synchronizes to the
// next statement boundary and returns nil; the caller skips the nil entry.
func (p *Parser) declaration() ast.Stmt {
	errsBefore := len(p.errors)
	start := p.current
	var stmt ast.Stmt
	switch {
	case p.match(lexer.CLASS):
		stmt = p.classDeclaration()
	case p.match(lexer.FUN):
		stmt = p.function("function")
	case p.match(lexer.VAR):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.errors) > errsBefore {
		// A declaration that made progress and ended on its ';' already
		// stands at a statement boundary.
		if p.current == start || p.previous().Type != lexer.SEMICOLON {
			p.synchronize()
		}
		return nil
	}
	return stmt
}

// classDecl → "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENT, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		superName := p.consume(lexer.IDENT, "Expect superclass name.")
		superclass = ast.NewVariable(superName)
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function → IDENT "(" params? ")" block
// The "fun" keyword has already been consumed for top-level function
// declarations; methods never carry one.
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(lexer.IDENT, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENT, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.blockStatements()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENT, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarDeclStmt{Name: name, Initializer: initializer}
}

// statement → exprStmt | printStmt | block | ifStmt | whileStmt | forStmt | returnStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{LeftBrace: p.previous(), Statements: p.blockStatements()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	default:
		return p.exprStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: keyword, Value: value}
}

func (p *Parser) exprStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExprStmt{Expression: expr}
}

// block → "{" declaration* "}"
// The opening brace has already been consumed by the caller.
func (p *Parser) blockStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			stmts = append(stmts, d)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Keyword: keyword, Condition: cond, Then: then, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Keyword: keyword, Condition: cond, Body: body}
}

// forStmt → "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// `for` has no runtime representation of its own: it desugars into a
// While loop whose body re-appends the increment expression, wrapped in a
// Block together with the initializer when there is one (spec.md §4.1).
// A missing condition becomes a `true` literal so the loop runs
// unconditionally.
func (p *Parser) forStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.exprStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{LeftBrace: keyword, Statements: []ast.Stmt{
			body,
			&ast.ExprStmt{Expression: increment},
		}}
	}

	if condition == nil {
		condition = ast.NewLiteral(keyword, true)
	}
	body = &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{LeftBrace: keyword, Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}
