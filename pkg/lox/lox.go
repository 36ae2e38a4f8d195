// Package lox is the embeddable facade over the Language pipeline: lex,
// parse, resolve, evaluate. It is what cmd/loxi and the snapshot tests
// build on (spec.md §6).
package lox

import (
	"io"
	"time"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/interp"
	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/loxi-lang/loxi/internal/parser"
	"github.com/loxi-lang/loxi/internal/resolver"
)

// Engine runs Language programs against a persistent global environment:
// one value per CLI invocation of `loxi run`, or one value reused across
// every line of a `loxi repl` session (spec.md §6).
type Engine struct {
	stdout       io.Writer
	maxCallDepth int
	clock        func() float64
	trace        io.Writer

	in *interp.Interp
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithStdout redirects `print` output. Defaults to io.Discard.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithMaxCallDepth overrides the recursion limit read from
// `.loxi.yaml`'s maxRecursionDepth (spec.md §9).
func WithMaxCallDepth(depth int) Option {
	return func(e *Engine) { e.maxCallDepth = depth }
}

// WithClock registers the `clock` builtin using now as its clock source.
// Omit this option to leave `clock` undefined.
func WithClock(now func() float64) Option {
	return func(e *Engine) { e.clock = now }
}

// WithTrace writes one line per call frame entered/left to w, the
// `loxi run --trace` flag's backing implementation.
func WithTrace(w io.Writer) Option {
	return func(e *Engine) { e.trace = w }
}

// WithSystemClock is a convenience WithClock backed by the wall clock,
// the default `loxi run` uses unless `--no-clock`/`clock: false` is set.
func WithSystemClock() Option {
	return WithClock(func() float64 {
		return float64(time.Now().UnixNano()) / 1e9
	})
}

// New creates an Engine with a fresh global environment.
func New(opts ...Option) *Engine {
	e := &Engine{stdout: io.Discard}
	for _, opt := range opts {
		opt(e)
	}

	interpOpts := []interp.Option{interp.WithStdout(e.stdout)}
	if e.maxCallDepth > 0 {
		interpOpts = append(interpOpts, interp.WithMaxCallDepth(e.maxCallDepth))
	}
	if e.clock != nil {
		interpOpts = append(interpOpts, interp.WithClock(e.clock))
	}
	if e.trace != nil {
		interpOpts = append(interpOpts, interp.WithTrace(e.trace))
	}
	e.in = interp.New(nil, e.stdout, interpOpts...)
	return e
}

// Diagnostics is every error recorded for a single Run/Eval call: parse
// errors if any were found (resolution and evaluation are then skipped,
// per spec.md §4.1), otherwise resolve errors, otherwise the runtime
// error that stopped evaluation.
type Diagnostics struct {
	Parse   []*parser.ParseError
	Resolve []*resolver.ResolveError
	Runtime *interp.RuntimeError
}

// HasErrors reports whether d carries any diagnostic at all.
func (d Diagnostics) HasErrors() bool {
	return len(d.Parse) > 0 || len(d.Resolve) > 0 || d.Runtime != nil
}

// ExitCode maps d to the process exit status spec.md §6 assigns: 0 for
// no error, 65 for a parse/resolve error, 70 for a runtime error.
func (d Diagnostics) ExitCode() int {
	switch {
	case len(d.Parse) > 0 || len(d.Resolve) > 0:
		return 65
	case d.Runtime != nil:
		return 70
	default:
		return 0
	}
}

// Format renders every diagnostic the way the CLI writes them to stderr
// (spec.md §6 line format).
func (d Diagnostics) Format() string {
	diags := make([]*errors.Diagnostic, 0, len(d.Parse)+len(d.Resolve)+1)
	for _, pe := range d.Parse {
		diags = append(diags, &errors.Diagnostic{
			Category: errors.CategoryParse,
			Message:  pe.Message,
			Pos:      pe.Pos,
			Lexeme:   pe.Lexeme,
			AtEOF:    pe.AtEnd,
		})
	}
	for _, re := range d.Resolve {
		diags = append(diags, &errors.Diagnostic{
			Category: errors.CategoryResolve,
			Message:  re.Message,
			Pos:      re.Pos,
		})
	}
	if d.Runtime != nil {
		diags = append(diags, d.Runtime.Diagnostic())
	}
	return errors.FormatDiagnostics(diags)
}

// Parse lexes and parses source without resolving or evaluating it —
// the pipeline stage `loxi tokens`/`loxi ast` stop at.
func Parse(source string) (*ast.Program, []*parser.ParseError) {
	p := parser.New(lexer.New(source))
	prog := p.ParseProgram()
	return prog, p.Errors()
}

// Run lexes, parses, resolves, and evaluates source as a complete
// program, in the Engine's persistent global environment (spec.md §6
// "with one argument -> read the whole file, run once").
func (e *Engine) Run(source string) Diagnostics {
	prog, parseErrs := Parse(source)
	if len(parseErrs) > 0 {
		return Diagnostics{Parse: parseErrs}
	}

	r := resolver.New()
	r.Resolve(prog.Statements)
	if len(r.Errors()) > 0 {
		return Diagnostics{Resolve: r.Errors()}
	}

	e.in.AddLocals(r.Locals())
	if rerr := e.in.Interpret(prog.Statements); rerr != nil {
		return Diagnostics{Runtime: rerr}
	}
	return Diagnostics{}
}

// Globals exposes the persistent global environment, for the REPL's `:env`
// introspection command (pretty-printed directly via kr/pretty).
func (e *Engine) Globals() *interp.Environment {
	return e.in.Globals()
}

// GlobalNames lists every top-level binding, for the REPL's `:globals`
// command (SPEC_FULL.md §6.1 — natural-sorted by the caller).
func (e *Engine) GlobalNames() []string {
	return e.in.Globals().Names()
}

// GlobalString renders the current value of a top-level binding the way
// `print` would, for the REPL's `:globals` command.
func (e *Engine) GlobalString(name string) (string, bool) {
	v, ok := e.in.Globals().Get(name)
	if !ok {
		return "", false
	}
	return interp.Stringify(v), true
}

// EvalExprEcho parses a single line as one expression statement and, if
// it is a bare expression (not an assignment or a call, whose results
// are conventionally discarded), evaluates and renders it the way the
// REPL echoes bare expressions (SPEC_FULL.md §12.1). ok is false if line
// is not a single bare-expression statement, in which case the caller
// should fall back to running it as a normal statement via Run.
func (e *Engine) EvalExprEcho(line string) (rendered string, diags Diagnostics, ok bool) {
	prog, parseErrs := Parse(line)
	if len(parseErrs) > 0 {
		return "", Diagnostics{Parse: parseErrs}, false
	}
	if len(prog.Statements) != 1 {
		return "", Diagnostics{}, false
	}
	exprStmt, isExpr := prog.Statements[0].(*ast.ExprStmt)
	if !isExpr {
		return "", Diagnostics{}, false
	}
	switch exprStmt.Expression.(type) {
	case *ast.Assign, *ast.Call:
		return "", Diagnostics{}, false
	}

	r := resolver.New()
	r.Resolve(prog.Statements)
	if len(r.Errors()) > 0 {
		return "", Diagnostics{Resolve: r.Errors()}, true
	}
	e.in.AddLocals(r.Locals())

	v, rerr := e.in.EvalExpr(exprStmt.Expression)
	if rerr != nil {
		return "", Diagnostics{Runtime: rerr}, true
	}
	return interp.Stringify(v), Diagnostics{}, true
}
