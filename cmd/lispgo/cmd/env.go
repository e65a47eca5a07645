package cmd

import (
	"github.com/cwbudde/lispgo/internal/core"
	"github.com/cwbudde/lispgo/internal/errutil"
	"github.com/cwbudde/lispgo/internal/eval"
	"github.com/cwbudde/lispgo/internal/printer"
	"github.com/cwbudde/lispgo/internal/reader"
	"github.com/cwbudde/lispgo/internal/runtime"
)

const hostLanguage = "lispgo"

// buildEnv assembles the root environment: the native core, the "eval"
// builtin bound back to this same environment (the hook load-file relies
// on), *ARGV* and *host-language*, then the bootstrap forms.
func buildEnv(argv []string) (*runtime.Env, error) {
	env := core.NewEnv()

	env.Set("eval", runtime.NewFn("eval", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, runtime.Throwf("Function requires 1 argument(s); got %d", len(args))
		}
		return eval.Eval(args[0], env)
	}))

	argvVals := make([]runtime.Value, len(argv))
	for i, a := range argv {
		argvVals[i] = runtime.Str(a)
	}
	env.Set("*ARGV*", runtime.NewList(argvVals...))
	env.Set("*host-language*", runtime.Str(hostLanguage))

	for _, form := range bootstrapForms {
		if _, err := evalSource(form, env); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// evalSource reads one form from src and evaluates it against env. For
// empty/whitespace/comment-only input it returns a nil Value and nil error.
func evalSource(src string, env *runtime.Env) (runtime.Value, error) {
	form, ok, err := reader.Read(src)
	if err != nil {
		return nil, errutil.NewReadError("", err)
	}
	if !ok {
		return nil, nil
	}
	return eval.Eval(form, env)
}

// printResult renders v the way the REPL and "str"-mode callers expect:
// readably, matching the reader/printer round-trip contract.
func printResult(v runtime.Value) string {
	return printer.Print(v, true)
}
