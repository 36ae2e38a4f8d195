package interp

import (
	"bytes"
	"testing"

	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/loxi-lang/loxi/internal/parser"
	"github.com/loxi-lang/loxi/internal/resolver"
)

// run lexes, parses, resolves, and interprets src, returning stdout. Any
// parse/resolve error fails the test immediately; a RuntimeError is
// returned for the caller to inspect.
func run(t *testing.T, src string) (string, *RuntimeError) {
	t.Helper()

	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	r := resolver.New()
	r.Resolve(prog.Statements)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}

	var out bytes.Buffer
	in := New(r.Locals(), &out)
	rerr := in.Interpret(prog.Statements)
	return out.String(), rerr
}

func TestClosuresCaptureEnvironmentsNotValues(t *testing.T) {
	out, rerr := run(t, `var a = "outer"; { var a = "inner"; fun show() { print a; } show(); }`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "inner\n" {
		t.Errorf("expected %q, got %q", "inner\n", out)
	}
}

func TestStaticResolutionStableAcrossLaterMutation(t *testing.T) {
	out, rerr := run(t, `
var a = "global";
{ fun show() { print a; } show(); var a = "block"; show(); }
`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "global\nglobal\n" {
		t.Errorf("expected %q, got %q", "global\nglobal\n", out)
	}
}

func TestForDesugaringFibonacci(t *testing.T) {
	out, rerr := run(t, `
var a = 0; var b = 1;
for (var i = 0; i < 5; i = i + 1) { print a; var t = a + b; a = b; b = t; }
`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "0\n1\n1\n2\n3\n" {
		t.Errorf("expected fibonacci prefix, got %q", out)
	}
}

func TestInitializerReturnsThis(t *testing.T) {
	out, rerr := run(t, `class Foo { init() { return; } } print Foo().init();`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "Foo instance\n" {
		t.Errorf("expected %q, got %q", "Foo instance\n", out)
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	out, rerr := run(t, `
class A { say() { print "A"; } }
class B < A { say() { super.say(); print "B"; } }
B().say();
`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "A\nB\n" {
		t.Errorf("expected %q, got %q", "A\nB\n", out)
	}
}

func TestRuntimeErrorOnBadPlus(t *testing.T) {
	_, rerr := run(t, `print "3" + 3;`)
	if rerr == nil {
		t.Fatal("expected a runtime error")
	}
	if rerr.Message != "Operands must be two numbers or two strings." {
		t.Errorf("unexpected message: %q", rerr.Message)
	}
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, rerr := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if rerr == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, rerr := run(t, `print nope;`)
	if rerr == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestOrReturnsLeftOperandWhenTruthy(t *testing.T) {
	out, rerr := run(t, `print "hi" or "unused";`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "hi\n" {
		t.Errorf("expected %q, got %q", "hi\n", out)
	}
}

func TestAndReturnsLeftOperandWhenFalsy(t *testing.T) {
	out, rerr := run(t, `print false and "unused";`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "false\n" {
		t.Errorf("expected %q, got %q", "false\n", out)
	}
}

func TestNaNIsNotEqualToItself(t *testing.T) {
	out, rerr := run(t, `var n = 0/0; print n == n;`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out != "false\n" {
		t.Errorf("expected NaN != NaN, got %q", out)
	}
}

func TestStackOverflowOnUnboundedRecursion(t *testing.T) {
	var out bytes.Buffer
	p := parser.New(lexer.New(`fun recurse() { return recurse(); } recurse();`))
	prog := p.ParseProgram()
	r := resolver.New()
	r.Resolve(prog.Statements)
	in := New(r.Locals(), &out, WithMaxCallDepth(64))
	rerr := in.Interpret(prog.Statements)
	if rerr == nil {
		t.Fatal("expected a stack overflow runtime error")
	}
}

func TestClockBuiltinIsCallableWithZeroArgs(t *testing.T) {
	var out bytes.Buffer
	p := parser.New(lexer.New(`print clock();`))
	prog := p.ParseProgram()
	r := resolver.New()
	r.Resolve(prog.Statements)
	in := New(r.Locals(), &out, WithClock(func() float64 { return 123 }))
	if rerr := in.Interpret(prog.Statements); rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out.String() != "123\n" {
		t.Errorf("expected %q, got %q", "123\n", out.String())
	}
}
