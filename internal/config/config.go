// Package config loads `.loxi.yaml`, the optional configuration file
// `cmd/loxi` reads for defaults that CLI flags may override
// (SPEC_FULL.md §6.2, §10.3).
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// DefaultMaxRecursionDepth bounds call-stack depth when neither config
// nor a flag overrides it.
const DefaultMaxRecursionDepth = 1024

// Options is the merged configuration consumed by pkg/lox.New and by
// cmd/loxi. Zero values mean "use the built-in default".
type Options struct {
	// Clock enables or disables the `clock` builtin. Defaults to true.
	Clock *bool `yaml:"clock"`
	// MaxRecursionDepth bounds the interpreter's call stack.
	MaxRecursionDepth int `yaml:"maxRecursionDepth"`
	// Color is parsed from the file but not read by any command;
	// diagnostics are always rendered as plain text.
	Color bool `yaml:"color"`
	// HistoryFile is parsed from the file but not read by the REPL, which
	// keeps no line history.
	HistoryFile string `yaml:"historyFile"`
}

// ClockEnabled reports whether the clock builtin should be registered,
// defaulting to true when the config file is silent on it.
func (o Options) ClockEnabled() bool {
	return o.Clock == nil || *o.Clock
}

// EffectiveMaxRecursionDepth returns the configured depth, or
// DefaultMaxRecursionDepth if unset.
func (o Options) EffectiveMaxRecursionDepth() int {
	if o.MaxRecursionDepth > 0 {
		return o.MaxRecursionDepth
	}
	return DefaultMaxRecursionDepth
}

// Load reads `.loxi.yaml` from the current directory, falling back to
// `$HOME/.loxi.yaml`. Returns zero-value Options (all defaults) if
// neither file exists; a malformed file is reported as an error, which
// the CLI treats as misuse (exit 65) per SPEC_FULL.md §6.2.
func Load() (Options, error) {
	for _, candidate := range searchPaths() {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Options{}, err
		}
		return parse(data)
	}
	return Options{}, nil
}

func searchPaths() []string {
	paths := []string{".loxi.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".loxi.yaml"))
	}
	return paths
}

func parse(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
