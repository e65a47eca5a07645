package core

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/lispgo/internal/errutil"
	"github.com/cwbudde/lispgo/internal/printer"
	"github.com/cwbudde/lispgo/internal/reader"
	"github.com/cwbudde/lispgo/internal/runtime"
)

// stdin is shared across repeated readline calls so each call resumes
// where the last one left off instead of re-buffering the stream.
var stdin = bufio.NewReader(os.Stdin)

// registerIO binds the printing, string-conversion and host-interaction
// builtins: pr-str, str, prn, println, read-string, slurp,
// readline, time-ms.
func registerIO(env *runtime.Env) {
	def(env, "pr-str", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.Str(printer.PrStr(args, true, " ")), nil
	})

	def(env, "str", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.Str(printer.PrStr(args, false, "")), nil
	})

	def(env, "prn", func(args []runtime.Value) (runtime.Value, error) {
		fmt.Println(printer.PrStr(args, true, " "))
		return runtime.Nil, nil
	})

	def(env, "println", func(args []runtime.Value) (runtime.Value, error) {
		fmt.Println(printer.PrStr(args, false, " "))
		return runtime.Nil, nil
	})

	def(env, "read-string", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		s, err := asStr(args[0])
		if err != nil {
			return nil, err
		}
		v, ok, err := reader.Read(s)
		if err != nil {
			return nil, runtime.Throwf("%s", err.Error())
		}
		if !ok {
			return runtime.Nil, nil
		}
		return v, nil
	})

	def(env, "slurp", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		path, err := asStr(args[0])
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errutil.WrapHost(err, "slurp: failed to read "+path)
		}
		return runtime.Str(string(data)), nil
	})

	def(env, "readline", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) > 1 {
			return nil, runtime.Throwf("Function requires 0 or 1 argument(s); got %d", len(args))
		}
		if len(args) == 1 {
			prompt, err := asStr(args[0])
			if err != nil {
				return nil, err
			}
			fmt.Print(prompt)
		}
		line, err := stdin.ReadString('\n')
		if err != nil {
			if line == "" {
				return runtime.Nil, nil
			}
			return runtime.Str(trimNewline(line)), nil
		}
		return runtime.Str(trimNewline(line)), nil
	})

	def(env, "time-ms", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 0); err != nil {
			return nil, err
		}
		return runtime.Int(time.Now().UnixMilli()), nil
	})
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
