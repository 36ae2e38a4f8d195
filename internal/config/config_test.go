package config

import "testing"

func TestParseDefaults(t *testing.T) {
	opts, err := parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.ClockEnabled() {
		t.Error("expected clock enabled by default")
	}
	if opts.EffectiveMaxRecursionDepth() != DefaultMaxRecursionDepth {
		t.Errorf("expected default recursion depth %d, got %d", DefaultMaxRecursionDepth, opts.EffectiveMaxRecursionDepth())
	}
}

func TestParseOverrides(t *testing.T) {
	opts, err := parse([]byte(`
clock: false
maxRecursionDepth: 256
color: true
historyFile: /tmp/loxi_history
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ClockEnabled() {
		t.Error("expected clock disabled")
	}
	if opts.EffectiveMaxRecursionDepth() != 256 {
		t.Errorf("expected recursion depth 256, got %d", opts.EffectiveMaxRecursionDepth())
	}
	if !opts.Color {
		t.Error("expected color enabled")
	}
	if opts.HistoryFile != "/tmp/loxi_history" {
		t.Errorf("unexpected history file: %q", opts.HistoryFile)
	}
}

func TestParseMalformedYAMLIsAnError(t *testing.T) {
	if _, err := parse([]byte("clock: [this is not a bool")); err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}
