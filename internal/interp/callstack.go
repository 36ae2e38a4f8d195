package interp

import (
	interperrors "github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// defaultMaxCallDepth bounds recursion when no explicit limit is
// configured (spec.md §9 mentions stack depth only implicitly, via the
// host's own call stack; this interpreter enforces an explicit one so a
// runaway recursive function fails with a RuntimeError rather than a
// host stack overflow).
const defaultMaxCallDepth = 1024

// callStack tracks live function calls for overflow detection and for
// the trace attached to an escaping RuntimeError.
type callStack struct {
	frames   interperrors.StackTrace
	maxDepth int
}

func newCallStack(maxDepth int) *callStack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxCallDepth
	}
	return &callStack{maxDepth: maxDepth}
}

// push adds a frame, returning a RuntimeError instead if that would
// exceed maxDepth.
func (cs *callStack) push(name string, pos lexer.Position) *RuntimeError {
	if len(cs.frames) >= cs.maxDepth {
		return NewRuntimeError(pos, "Stack overflow: maximum recursion depth (%d) exceeded in '%s'.", cs.maxDepth, name)
	}
	p := pos
	cs.frames = append(cs.frames, interperrors.NewStackFrame(name, "", &p))
	return nil
}

func (cs *callStack) pop() {
	if len(cs.frames) > 0 {
		cs.frames = cs.frames[:len(cs.frames)-1]
	}
}

// snapshot copies the current frames for attaching to an escaping error.
func (cs *callStack) snapshot() interperrors.StackTrace {
	frames := make(interperrors.StackTrace, len(cs.frames))
	copy(frames, cs.frames)
	return frames
}

func (cs *callStack) depth() int {
	return len(cs.frames)
}
