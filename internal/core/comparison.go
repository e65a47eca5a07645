package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerComparison binds = (structural equality) and the four
// numeric orderings.
func registerComparison(env *runtime.Env) {
	def(env, "=", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		return runtime.Bool(runtime.Equal(args[0], args[1])), nil
	})
	def(env, "<", numericCompare(func(a, b int64) bool { return a < b }))
	def(env, "<=", numericCompare(func(a, b int64) bool { return a <= b }))
	def(env, ">", numericCompare(func(a, b int64) bool { return a > b }))
	def(env, ">=", numericCompare(func(a, b int64) bool { return a >= b }))
}

func numericCompare(cmp func(a, b int64) bool) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		a, err := asInt(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt(args[1])
		if err != nil {
			return nil, err
		}
		return runtime.Bool(cmp(a, b)), nil
	}
}
