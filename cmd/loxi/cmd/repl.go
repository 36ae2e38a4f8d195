package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/loxi-lang/loxi/pkg/lox"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Language prompt",
	Long: `Start an interactive read-eval-print loop. Each line runs through the
same lex -> parse -> resolve -> evaluate pipeline as 'loxi run', against a
single global environment that persists across lines.

A bare expression (not an assignment or a call) echoes its value, the
same way 'print' would.

REPL-only commands:
  :globals   list every global binding, natural-sorted by name
  :env       pretty-print the current global environment
  :quit      exit the REPL`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	opts := []lox.Option{lox.WithStdout(os.Stdout)}
	if cfg.ClockEnabled() {
		opts = append(opts, lox.WithSystemClock())
	}
	opts = append(opts, lox.WithMaxCallDepth(cfg.EffectiveMaxRecursionDepth()))
	engine := lox.New(opts...)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			fmt.Print("> ")
			continue
		case ":quit", ":exit":
			return nil
		case ":globals":
			printGlobals(engine)
			fmt.Print("> ")
			continue
		case ":env":
			pretty.Println(engine.Globals())
			fmt.Print("> ")
			continue
		}

		if rendered, diags, ok := engine.EvalExprEcho(line); ok {
			if diags.HasErrors() {
				fmt.Fprintln(os.Stderr, diags.Format())
			} else {
				fmt.Println(rendered)
			}
			fmt.Print("> ")
			continue
		}

		diags := engine.Run(line)
		if diags.HasErrors() {
			fmt.Fprintln(os.Stderr, diags.Format())
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}

func printGlobals(engine *lox.Engine) {
	names := engine.GlobalNames()
	natural.Sort(names)
	for _, name := range names {
		rendered, _ := engine.GlobalString(name)
		fmt.Printf("%s = %s\n", name, rendered)
	}
}
