// Package errors provides the shared diagnostic formatting used by the
// parser, resolver, and evaluator: a uniform "[Line N] Error: MESSAGE"
// rendering, plus call-stack traces for runtime errors (spec.md §6, §7).
package errors

import (
	"fmt"
	"strings"

	"github.com/loxi-lang/loxi/internal/lexer"
)

// Category distinguishes the three disjoint diagnostic kinds spec.md §7
// assigns distinct exit codes to.
type Category int

const (
	// CategoryParse is a syntax error recorded by the parser. Exit 65.
	CategoryParse Category = iota
	// CategoryResolve is a static binding error recorded by the resolver.
	// Exit 65.
	CategoryResolve
	// CategoryRuntime is an error raised during evaluation. Exit 70.
	CategoryRuntime
)

func (c Category) String() string {
	switch c {
	case CategoryParse:
		return "parse error"
	case CategoryResolve:
		return "resolve error"
	case CategoryRuntime:
		return "runtime error"
	default:
		return "error"
	}
}

// ExitCode returns the conventional process exit status for the category
// (spec.md §6: static errors exit 65, runtime errors exit 70).
func (c Category) ExitCode() int {
	if c == CategoryRuntime {
		return 70
	}
	return 65
}

// Diagnostic is a single reported error with enough context to render the
// spec.md §6 line format and, for runtime errors, a call stack.
type Diagnostic struct {
	Category Category
	Message  string
	Pos      lexer.Position
	// Lexeme and AtEOF anchor a parse/resolve error to the offending
	// token, per spec.md §6. Both are zero-valued for runtime errors,
	// which are anchored only by line.
	Lexeme string
	AtEOF  bool
	// Stack is the call stack at the point a runtime error escaped, oldest
	// frame first. Empty for parse/resolve errors.
	Stack StackTrace
}

// NewDiagnostic builds a Diagnostic with no token anchor, anchored only
// by line the way runtime errors are (spec.md §6).
func NewDiagnostic(category Category, message string, pos lexer.Position) *Diagnostic {
	return &Diagnostic{Category: category, Message: message, Pos: pos}
}

// Error implements the error interface, rendering the spec.md §6 line
// format: "[Line N] Error: MESSAGE", with an "at 'LEXEME'." or "at end"
// clause for token-anchored diagnostics.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Line %d] Error", d.Pos.Line)
	switch {
	case d.AtEOF:
		sb.WriteString(" at end")
	case d.Lexeme != "":
		fmt.Fprintf(&sb, " at '%s'.", d.Lexeme)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if len(d.Stack) > 0 {
		sb.WriteString("\n")
		sb.WriteString(d.Stack.String())
	}
	return sb.String()
}

// FormatDiagnostics renders every diagnostic, one per line, the way the
// CLI writes them to stderr (spec.md §6).
func FormatDiagnostics(diags []*Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}
