package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "lispgo [file] [args...]",
	Short: "A small Lisp interpreter",
	Long: `lispgo is a Lisp interpreter: persistent lists, vectors and hash-maps,
lexical closures, tail-call-safe recursion, macros and quasiquote.

Run with no file argument to start the interactive REPL. Run with a file
argument to load and evaluate it, binding the remaining arguments to
*ARGV*.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMain,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of starting the REPL")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
