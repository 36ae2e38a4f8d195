package cmd

import (
	"fmt"
	"os"

	"github.com/loxi-lang/loxi/internal/astjson"
	"github.com/loxi-lang/loxi/pkg/lox"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
	noClock  bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Language program",
	Long: `Lex, parse, resolve, and evaluate a Language program.

Examples:
  # Run a script file
  loxi run script.lox

  # Evaluate an inline expression
  loxi run -e "print 1 + 2;"

  # Run with an AST dump before execution
  loxi run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before execution")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace each call frame to stderr")
	runCmd.Flags().BoolVar(&noClock, "no-clock", false, "disable the clock builtin")
}

func runScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	if dumpAST {
		prog, parseErrs := lox.Parse(source)
		if len(parseErrs) == 0 {
			doc, jerr := astjson.Marshal(prog)
			if jerr == nil {
				fmt.Println("AST:")
				fmt.Println(doc)
				fmt.Println()
			}
		}
	}

	opts := []lox.Option{lox.WithStdout(os.Stdout)}
	if !noClock && cfg.ClockEnabled() {
		opts = append(opts, lox.WithSystemClock())
	}
	opts = append(opts, lox.WithMaxCallDepth(cfg.EffectiveMaxRecursionDepth()))
	if trace {
		fmt.Fprintf(os.Stderr, "[trace] running %s\n", filename)
		opts = append(opts, lox.WithTrace(os.Stderr))
	}

	engine := lox.New(opts...)
	diags := engine.Run(source)
	if diags.HasErrors() {
		fmt.Fprintln(os.Stderr, diags.Format())
		os.Exit(diags.ExitCode())
	}
	return nil
}

// readSource resolves the run/tokens/ast commands' shared input
// convention: -e/--eval inline code or a single file argument. With
// neither, it returns an error; stdin is not read.
func readSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], rerr)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline code")
}
