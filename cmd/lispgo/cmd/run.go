package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/lispgo/internal/errutil"
	"github.com/cwbudde/lispgo/internal/runtime"
	"github.com/spf13/cobra"
)

func runMain(_ *cobra.Command, args []string) error {
	if evalExpr != "" {
		env, err := buildEnv(args)
		if err != nil {
			return err
		}
		v, err := evalSource(evalExpr, env)
		if err != nil {
			return reportUncaught(err)
		}
		if v != nil {
			fmt.Println(printResult(v))
		}
		return nil
	}

	if len(args) >= 1 {
		filename := args[0]
		env, err := buildEnv(args[1:])
		if err != nil {
			return err
		}
		loadForm := fmt.Sprintf("(load-file %q)", filename)
		if _, err := evalSource(loadForm, env); err != nil {
			return reportUncaught(err)
		}
		return nil
	}

	env, err := buildEnv(nil)
	if err != nil {
		return err
	}
	runREPL(env)
	return nil
}

// reportUncaught prints an uncaught error to stderr and exits the process
// with status 1: the file/eval-mode half of the unwinding policy, mirroring
// runREPL's handling of the same Thrown error for interactive input.
func reportUncaught(err error) error {
	if thrown, ok := err.(*runtime.Thrown); ok {
		fmt.Fprintln(os.Stderr, errutil.FormatThrown(thrown, false))
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
	return nil
}
