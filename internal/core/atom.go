package core

import (
	"github.com/cwbudde/lispgo/internal/eval"
	"github.com/cwbudde/lispgo/internal/runtime"
)

// persistHook, when non-nil (only in a build tagged "sqlite"), mirrors an
// atom's post-mutation value into its backing store. See persist_sqlite.go.
var persistHook func(*runtime.AtomValue)

// registerAtom binds deref/reset!/swap!, the interpreter's only
// mutable value.
func registerAtom(env *runtime.Env) {
	def(env, "deref", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		a, err := asAtom(args[0])
		if err != nil {
			return nil, err
		}
		return a.Value, nil
	})

	def(env, "reset!", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		a, err := asAtom(args[0])
		if err != nil {
			return nil, err
		}
		a.Value = args[1]
		if persistHook != nil {
			persistHook(a)
		}
		return a.Value, nil
	})

	def(env, "swap!", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireMinArity(args, 2); err != nil {
			return nil, err
		}
		a, err := asAtom(args[0])
		if err != nil {
			return nil, err
		}
		if err := asFn(args[1]); err != nil {
			return nil, err
		}
		callArgs := make([]runtime.Value, 0, len(args)-1)
		callArgs = append(callArgs, a.Value)
		callArgs = append(callArgs, args[2:]...)
		v, err := eval.Apply(args[1], callArgs)
		if err != nil {
			return nil, err
		}
		a.Value = v
		if persistHook != nil {
			persistHook(a)
		}
		return v, nil
	})
}
