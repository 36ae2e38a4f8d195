package lox

import (
	"bytes"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune obsolete snapshots after the full suite
// runs.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// scenario programs grounded on spec.md §8's six testable scenarios, run
// here through the public Engine facade rather than internal/interp
// directly, so a regression in the facade wiring itself would surface.
var scenarios = map[string]string{
	"closures_capture_environment": `
var a = "outer";
{
  var a = "inner";
  fun show() { print a; }
  show();
}`,
	"static_resolution_stable_across_mutation": `
var a = "global";
{
  fun show() { print a; }
  show();
  var a = "block";
  show();
}`,
	"for_desugaring_fibonacci": `
var a = 0;
var b = 1;
for (var i = 0; i < 5; i = i + 1) {
  print a;
  var t = a + b;
  a = b;
  b = t;
}`,
	"initializer_returns_this": `
class Foo {
  init() { return; }
}
print Foo().init();`,
	"inheritance_and_super": `
class A {
  say() { print "A"; }
}
class B < A {
  say() { super.say(); print "B"; }
}
B().say();`,
}

func TestScenarioSnapshots(t *testing.T) {
	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			engine := New(WithStdout(&out))
			diags := engine.Run(src)
			if diags.HasErrors() {
				t.Fatalf("unexpected diagnostics: %s", diags.Format())
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}

func TestRuntimeErrorSnapshot(t *testing.T) {
	var out bytes.Buffer
	engine := New(WithStdout(&out))
	diags := engine.Run(`print "a" + 1;`)
	if !diags.HasErrors() {
		t.Fatal("expected a runtime error")
	}
	snaps.MatchSnapshot(t, diags.Format())
}
