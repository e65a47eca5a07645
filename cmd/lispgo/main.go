// Command lispgo is the REPL and script runner for the interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/lispgo/cmd/lispgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
