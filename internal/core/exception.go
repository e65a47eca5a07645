package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerException binds throw, the Lisp-level half of the interpreter's
// single host-level unwinding mechanism; the other half, try*/catch*, is a
// special form since it must run its handler with form left unevaluated.
func registerException(env *runtime.Env) {
	def(env, "throw", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		return nil, runtime.Throw(args[0])
	})
}
