// Package astjson serializes the Language's AST to JSON for `loxi ast
// --json`, and provides the query/redaction helpers built on
// `tidwall/gjson` and `tidwall/sjson`; the CLI uses Query for
// `--query` (SPEC_FULL.md §6.1, §11).
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Marshal renders prog as an indented JSON document: one object per
// node, tagged with its node kind and its children; expression nodes
// also carry their stable id.
func Marshal(prog *ast.Program) (string, error) {
	stmts := make([]any, len(prog.Statements))
	for i, s := range prog.Statements {
		stmts[i] = stmtNode(s)
	}
	data, err := json.MarshalIndent(map[string]any{"statements": stmts}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Query evaluates a gjson path against an AST JSON document (produced by
// Marshal) and returns the matched value's raw JSON text. Used by
// `loxi ast --json --query PATH`.
func Query(document, path string) (string, error) {
	result := gjson.Get(document, path)
	if !result.Exists() {
		return "", fmt.Errorf("no match for query %q", path)
	}
	return result.Raw, nil
}

// Redact strips every "id" field from an AST JSON document, so two
// parses of structurally identical source produce byte-identical JSON
// despite the monotonic node-id counter never resetting between runs
// (spec.md §9: ids are "process-wide", not source-derived).
func Redact(document string) (string, error) {
	var paths []string
	collectIDPaths(gjson.Parse(document), "", &paths)

	out := document
	for _, p := range paths {
		redacted, err := sjson.Delete(out, p)
		if err != nil {
			return "", err
		}
		out = redacted
	}
	return out, nil
}

func collectIDPaths(result gjson.Result, prefix string, paths *[]string) {
	switch {
	case result.IsObject():
		result.ForEach(func(key, value gjson.Result) bool {
			path := joinPath(prefix, key.String())
			if key.String() == "id" {
				*paths = append(*paths, path)
				return true
			}
			collectIDPaths(value, path, paths)
			return true
		})
	case result.IsArray():
		i := 0
		result.ForEach(func(_, value gjson.Result) bool {
			collectIDPaths(value, joinPath(prefix, fmt.Sprintf("%d", i)), paths)
			i++
			return true
		})
	}
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
