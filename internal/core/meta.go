package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerMeta binds meta/with-meta, operating through the Meta interface
// implemented by Fn, Lambda, List, Vector and HashMap.
func registerMeta(env *runtime.Env) {
	def(env, "meta", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		m, ok := args[0].(runtime.Meta)
		if !ok {
			return nil, runtime.Throwf("Value of type '%s' carries no metadata", args[0].Type())
		}
		return m.Meta(), nil
	})

	def(env, "with-meta", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		m, ok := args[0].(runtime.Meta)
		if !ok {
			return nil, runtime.Throwf("Value of type '%s' carries no metadata", args[0].Type())
		}
		return m.WithMeta(args[1]), nil
	})
}
