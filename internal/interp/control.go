package interp

import (
	"fmt"

	interperrors "github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// control marks why statement execution stopped early: either it ran to
// completion (controlNone) or a `return` unwound it (controlReturn).
// Kept as a plain result value rather than a Go panic/exception, per
// spec.md §9 ("do not build this on host-language exception semantics if
// a cheaper result-type channel is available").
type control int

const (
	controlNone control = iota
	controlReturn
)

// RuntimeError is a runtime fault raised during evaluation: a type
// mismatch, an undefined variable, a bad call, a stack overflow
// (spec.md §7). Distinct from the controlReturn signal; one must never
// leak into the other.
type RuntimeError struct {
	Message string
	Pos     lexer.Position
	Stack   interperrors.StackTrace
}

// NewRuntimeError builds a RuntimeError anchored at pos, with no stack
// attached yet; the call machinery attaches frames as the error unwinds.
func NewRuntimeError(pos lexer.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Diagnostic renders e the way the CLI reports it at the top level: the
// spec.md §6 line format followed by the call stack, oldest frame last
// (spec.md §7).
func (e *RuntimeError) Diagnostic() *interperrors.Diagnostic {
	return &interperrors.Diagnostic{
		Category: interperrors.CategoryRuntime,
		Message:  e.Message,
		Pos:      e.Pos,
		Stack:    e.Stack,
	}
}
