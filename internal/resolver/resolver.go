// Package resolver implements the static pass that binds every variable,
// `this`, and `super` reference to an exact lexical-scope distance before
// evaluation begins (spec.md §4.2).
package resolver

import (
	"fmt"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// functionType tracks what kind of function body the resolver is currently
// inside, so `return` can be validated (spec.md §4.2).
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

// classType tracks whether the resolver is inside a class body, and
// whether that class has a superclass, so `this`/`super` can be validated.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// ResolveError is a single static binding error: an undeclared `this`, a
// `return` outside a function, reading a local in its own initializer, etc.
type ResolveError struct {
	Message string
	Pos     lexer.Position
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[Line %d] Error: %s", e.Pos.Line, e.Message)
}

// scope maps a name to whether it has finished being declared (true) or is
// mid-declaration (false, set by declare and flipped by define). The
// two-step protects against `var a = a;` silently capturing an outer `a`
// (spec.md §4.2).
type scope map[string]bool

// Resolver performs a single pass over a parsed program, producing a side
// table the Evaluator consults at every variable/this/super reference.
// Absence from the table means "resolve against globals" (spec.md §3).
type Resolver struct {
	scopes          []scope
	locals          map[ast.ID]int
	currentFunction functionType
	currentClass    classType
	errors          []*ResolveError
}

// New creates a Resolver with an empty side table. Call Resolve once per
// program before evaluating it.
func New() *Resolver {
	return &Resolver{locals: make(map[ast.ID]int)}
}

// Locals returns the populated side table: node identity → scope distance.
func (r *Resolver) Locals() map[ast.ID]int {
	return r.locals
}

// Errors returns every resolve error recorded during Resolve.
func (r *Resolver) Errors() []*ResolveError {
	return r.errors
}

// Resolve walks every top-level statement. Top level is never pushed onto
// the scope stack, so names resolved there are left out of the side table
// entirely (spec.md §3 invariants).
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) reportAt(pos lexer.Position, message string) {
	r.errors = append(r.errors, &ResolveError{Message: message, Pos: pos})
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts name into the innermost scope as "not yet defined". A
// duplicate declaration in the very same scope is a resolve error.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[name.Lexeme]; exists {
		r.reportAt(name.Pos, "Already a variable with this name in this scope.")
	}
	top[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost to outermost looking
// for name. If found at stack depth k from the top, it records (id → k) in
// the side table; otherwise the reference is left unresolved (global).
func (r *Resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}
