package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerHashMap binds assoc/dissoc/get/contains?/keys/vals.
func registerHashMap(env *runtime.Env) {
	def(env, "assoc", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireMinArity(args, 1); err != nil {
			return nil, err
		}
		m, err := asHashMap(args[0])
		if err != nil {
			return nil, err
		}
		rest := args[1:]
		if len(rest)%2 != 0 {
			return nil, runtime.Throwf("assoc requires an even number of key/value arguments")
		}
		for i := 0; i < len(rest); i += 2 {
			m, err = m.Assoc(rest[i], rest[i+1])
			if err != nil {
				return nil, err
			}
		}
		return m, nil
	})

	def(env, "dissoc", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireMinArity(args, 1); err != nil {
			return nil, err
		}
		m, err := asHashMap(args[0])
		if err != nil {
			return nil, err
		}
		for _, k := range args[1:] {
			m, err = m.Dissoc(k)
			if err != nil {
				return nil, err
			}
		}
		return m, nil
	})

	def(env, "get", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		if _, ok := args[0].(runtime.NilValue); ok {
			return runtime.Nil, nil
		}
		m, err := asHashMap(args[0])
		if err != nil {
			return nil, err
		}
		if v, ok := m.Get(args[1]); ok {
			return v, nil
		}
		return runtime.Nil, nil
	})

	def(env, "contains?", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		if _, ok := args[0].(runtime.NilValue); ok {
			return runtime.False, nil
		}
		m, err := asHashMap(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.Bool(m.Contains(args[1])), nil
	})

	def(env, "keys", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		m, err := asHashMap(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewList(m.Keys()...), nil
	})

	def(env, "vals", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		m, err := asHashMap(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewList(m.Vals()...), nil
	})
}

func asHashMap(v runtime.Value) (*runtime.HashMapValue, error) {
	m, ok := v.(*runtime.HashMapValue)
	if !ok {
		return nil, runtime.Throwf("Expected map, found '%s'", v.String())
	}
	return m, nil
}
