package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerConstructors binds list/vector/hash-map/symbol/keyword/atom and
// gensym, plus the additive "vec" builtin that quasiquote's
// pinned vector semantics expands to.
func registerConstructors(env *runtime.Env) {
	def(env, "list", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewList(args...), nil
	})
	def(env, "vector", func(args []runtime.Value) (runtime.Value, error) {
		items := make([]runtime.Value, len(args))
		copy(items, args)
		return runtime.NewVector(items), nil
	})
	def(env, "hash-map", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewHashMap(args...)
	})
	def(env, "symbol", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		s, err := asStr(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.Sym(s), nil
	})
	def(env, "keyword", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case *runtime.KwValue:
			return v, nil
		case *runtime.StrValue:
			return runtime.Kw(v.Value), nil
		default:
			return nil, runtime.Throwf("Expected string or keyword, found '%s'", v.String())
		}
	})
	def(env, "atom", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		return runtime.NewAtom(args[0]), nil
	})
	def(env, "gensym", func(args []runtime.Value) (runtime.Value, error) {
		prefix := "G__"
		if len(args) == 1 {
			s, err := asStr(args[0])
			if err != nil {
				return nil, err
			}
			prefix = s
		} else if len(args) != 0 {
			return nil, runtime.Throwf("Function requires 0 or 1 argument(s); got %d", len(args))
		}
		return runtime.Gensym(prefix), nil
	})
	def(env, "vec", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		items, err := asSeq(args[0])
		if err != nil {
			return nil, err
		}
		out := make([]runtime.Value, len(items))
		copy(out, items)
		return runtime.NewVector(out), nil
	})
}
