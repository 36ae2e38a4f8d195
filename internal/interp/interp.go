package interp

import (
	"fmt"
	"io"

	"github.com/loxi-lang/loxi/internal/ast"
)

// Interp is the tree-walking evaluator: it owns the global environment,
// the currently active environment (which changes as blocks and calls
// push and pop scopes), the resolver's side table, and the call stack
// used for overflow detection and error traces (spec.md §4.3).
type Interp struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.ID]int
	calls       *callStack
	stdout      io.Writer
	trace       io.Writer
}

// Option configures an Interp at construction time.
type Option func(*Interp)

// WithStdout redirects `print` output; defaults to the writer passed to
// New.
func WithStdout(w io.Writer) Option {
	return func(in *Interp) { in.stdout = w }
}

// WithMaxCallDepth overrides the recursion limit (spec.md §9); cmd/loxi
// passes `.loxi.yaml`'s maxRecursionDepth through pkg/lox to it.
func WithMaxCallDepth(depth int) Option {
	return func(in *Interp) { in.calls = newCallStack(depth) }
}

// WithClock registers the `clock` builtin (spec.md §9: "optional").
func WithClock(now func() float64) Option {
	return func(in *Interp) {
		in.globals.Define("clock", newClockBuiltin(now))
	}
}

// WithTrace writes one line per call frame entered/left to w
// (`loxi run --trace`, SPEC_FULL.md §6.1).
func WithTrace(w io.Writer) Option {
	return func(in *Interp) { in.trace = w }
}

// New creates an Interp with an empty global scope and the given node→
// depth side table produced by the resolver (spec.md §3). locals may be
// nil; use AddLocals to extend it later (the REPL resolves one line at a
// time against the same long-lived Interp, spec.md §6).
func New(locals map[ast.ID]int, stdout io.Writer, opts ...Option) *Interp {
	globals := NewEnvironment()
	if locals == nil {
		locals = make(map[ast.ID]int)
	}
	in := &Interp{
		globals:     globals,
		environment: globals,
		locals:      locals,
		calls:       newCallStack(defaultMaxCallDepth),
		stdout:      stdout,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// AddLocals merges a resolver side table into this Interp's, without
// discarding entries from previously resolved lines. The REPL calls this
// once per line, after resolving that line against the same cumulative
// node-identity space (spec.md §6 "persists environment across lines").
func (in *Interp) AddLocals(locals map[ast.ID]int) {
	for id, depth := range locals {
		in.locals[id] = depth
	}
}

// Globals returns the root environment, used by the REPL's `:globals`
// and `:env` introspection commands.
func (in *Interp) Globals() *Environment {
	return in.globals
}

// Interpret runs a full program's top-level statements in the global
// scope, stopping at the first RuntimeError (spec.md §6 "run once").
func (in *Interp) Interpret(statements []ast.Stmt) *RuntimeError {
	for _, stmt := range statements {
		if _, _, rerr := in.execute(stmt); rerr != nil {
			return rerr
		}
	}
	return nil
}

// EvalExpr evaluates a single expression in the current (global, for
// top-level REPL use) environment and returns its value. Exposed for the
// REPL's bare-expression echo (SPEC_FULL.md §12.1).
func (in *Interp) EvalExpr(e ast.Expr) (Value, *RuntimeError) {
	return in.eval(e)
}

// Stringify renders a Value exactly as `print` would, for callers outside
// this package (the REPL echo, `:globals`).
func Stringify(v Value) string {
	return stringify(v)
}

// lookUpVariable resolves a Variable/This/Super reference using the
// resolver's side table when present, or the global scope otherwise
// (spec.md §3: "absence means global").
func (in *Interp) lookUpVariable(id ast.ID, name string) (Value, bool) {
	if distance, ok := in.locals[id]; ok {
		return in.environment.GetAt(distance, name)
	}
	return in.globals.Get(name)
}

func undefinedVariable(name string) string {
	return fmt.Sprintf("Undefined variable '%s'.", name)
}
