package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/lispgo/internal/errutil"
	"github.com/cwbudde/lispgo/internal/eval"
	"github.com/cwbudde/lispgo/internal/reader"
	"github.com/cwbudde/lispgo/internal/replconfig"
	"github.com/cwbudde/lispgo/internal/replutil"
	"github.com/cwbudde/lispgo/internal/runtime"
	"github.com/google/shlex"
)

// runREPL drives the interactive loop: read a line (possibly several, for
// a form spanning multiple lines) via the environment's own readline
// builtin, evaluate it, print the result, and loop until EOF. A line
// starting with ":" is a REPL meta-command rather than Lisp source.
func runREPL(env *runtime.Env) {
	cfg, err := replconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ~/.lispgo.toml: %s\n", err)
		cfg = replconfig.Default()
	}
	if cfg.ShowHostBanner {
		fmt.Printf("%s\n", hostLanguage)
	}

	hist := openHistory(cfg.HistoryFile)
	defer hist.close()

	readlineFn, err := env.Get("readline")
	if err != nil {
		panic("readline builtin missing from root environment")
	}

	for {
		line, ok, err := readLine(readlineFn, cfg.Prompt)
		if err != nil {
			printErr(err)
			continue
		}
		if !ok {
			fmt.Println()
			return
		}
		if strings.HasPrefix(line, ":") {
			if !runMetaCommand(line, env) {
				return
			}
			continue
		}

		src, ok := readFullForm(readlineFn, line, cfg.Prompt)
		if !ok {
			return
		}
		hist.append(src)

		v, err := evalSource(src, env)
		if err != nil {
			printErr(err)
			continue
		}
		if v != nil {
			fmt.Println(printResult(v))
		}
	}
}

// readFullForm accumulates lines, prompting with a blank continuation
// prompt, until the token stream balances or EOF is reached.
func readFullForm(readlineFn runtime.Value, first, primaryPrompt string) (string, bool) {
	src := first
	cont := replutil.ContinuationPrompt(primaryPrompt)
	for !replutil.Balanced(reader.Tokenize(src)) {
		more, ok, err := readLine(readlineFn, cont)
		if err != nil || !ok {
			return src, ok
		}
		src += "\n" + more
	}
	return src, true
}

// readLine calls the readline builtin and unwraps its result: Str on a
// successful read, Nil at EOF.
func readLine(readlineFn runtime.Value, prompt string) (string, bool, error) {
	v, err := eval.Apply(readlineFn, []runtime.Value{runtime.Str(prompt)})
	if err != nil {
		return "", false, err
	}
	if _, isNil := v.(runtime.NilValue); isNil {
		return "", false, nil
	}
	s, ok := v.(*runtime.StrValue)
	if !ok {
		return "", false, nil
	}
	return s.Value, true, nil
}

// printErr reports a Lisp-level error to stdout in the REPL's own style:
// readably for a thrown value, verbatim for anything else (e.g. a read
// error, which has no runtime Value to print).
func printErr(err error) {
	if thrown, ok := err.(*runtime.Thrown); ok {
		fmt.Println(errutil.FormatThrown(thrown, false))
		return
	}
	fmt.Println(err.Error())
}

// runMetaCommand handles a ":command ..." line, tokenized shell-style so
// quoted file names with spaces work. It returns false if the REPL
// should exit.
func runMetaCommand(line string, env *runtime.Env) bool {
	fields, err := shlex.Split(strings.TrimPrefix(line, ":"))
	if err != nil || len(fields) == 0 {
		fmt.Println("Error: malformed meta-command")
		return true
	}
	switch fields[0] {
	case "quit", "exit":
		return false
	case "help":
		fmt.Println("Meta-commands: :load <file>  :quit  :exit  :help")
	case "load":
		if len(fields) != 2 {
			fmt.Println("Error: :load requires exactly one file argument")
			return true
		}
		form := fmt.Sprintf("(load-file %q)", fields[1])
		if v, err := evalSource(form, env); err != nil {
			printErr(err)
		} else if v != nil {
			fmt.Println(printResult(v))
		}
	default:
		fmt.Printf("Error: unknown meta-command '%s'\n", fields[0])
	}
	return true
}
