package cmd

import (
	"fmt"
	"os"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/astjson"
	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/pkg/lox"
	"github.com/spf13/cobra"
)

var (
	astJSON  bool
	astQuery string
)

var astCmd = &cobra.Command{
	Use:   "ast [script]",
	Short: "Parse a Language program and print its syntax tree",
	Long: `Parse (but do not resolve or run) a Language program and print its
syntax tree.

Examples:
  # Print the tree
  loxi ast script.lox

  # Serialize the tree as JSON
  loxi ast --json script.lox

  # Query a path into the serialized tree
  loxi ast --json --query "statements.0.value.operator" script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: astScript,
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
	astCmd.Flags().BoolVar(&astJSON, "json", false, "serialize the AST to JSON")
	astCmd.Flags().StringVar(&astQuery, "query", "", "evaluate a gjson path against the JSON AST (requires --json)")
}

func astScript(_ *cobra.Command, args []string) error {
	if astQuery != "" && !astJSON {
		return fmt.Errorf("--query requires --json")
	}

	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, parseErrs := lox.Parse(source)
	if len(parseErrs) > 0 {
		diags := make([]*errors.Diagnostic, len(parseErrs))
		for i, pe := range parseErrs {
			diags[i] = &errors.Diagnostic{
				Category: errors.CategoryParse,
				Message:  pe.Message,
				Pos:      pe.Pos,
				Lexeme:   pe.Lexeme,
				AtEOF:    pe.AtEnd,
			}
		}
		fmt.Fprintln(os.Stderr, errors.FormatDiagnostics(diags))
		os.Exit(65)
	}

	if !astJSON {
		printAST(prog)
		return nil
	}

	doc, err := astjson.Marshal(prog)
	if err != nil {
		return fmt.Errorf("failed to serialize AST for %s: %w", filename, err)
	}

	if astQuery == "" {
		fmt.Println(doc)
		return nil
	}

	match, err := astjson.Query(doc, astQuery)
	if err != nil {
		return err
	}
	fmt.Println(match)
	return nil
}

// printAST renders the tree in a compact human-readable form, one line
// per top-level statement.
func printAST(prog *ast.Program) {
	for i, stmt := range prog.Statements {
		fmt.Printf("%d: %s\n", i, stmt.String())
	}
}
