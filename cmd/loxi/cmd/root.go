package cmd

import (
	"fmt"
	"os"

	"github.com/loxi-lang/loxi/internal/config"
	"github.com/spf13/cobra"
)

// Version information, set by build flags (ldflags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "loxi",
	Short: "loxi is a tree-walking interpreter for the Lox language",
	Long: `loxi is a Go implementation of a Lox-family scripting language:
a recursive-descent parser, a static resolver binding every variable
reference to an exact lexical-scope distance, and a tree-walking
evaluator over the resolved program.`,
	Version: Version,
}

// verbose is the persistent --verbose/-v flag shared by every subcommand.
var verbose bool

// cfg is the merged `.loxi.yaml` configuration, loaded once in init()
// before any subcommand's flags are parsed, so flags can override it.
var cfg config.Options

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	loaded, err := config.Load()
	if err != nil {
		exitWithError(65, "malformed .loxi.yaml: %v", err)
	}
	cfg = loaded
}

func exitWithError(code int, msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(code)
}
