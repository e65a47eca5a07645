package core

import (
	"github.com/cwbudde/lispgo/internal/eval"
	"github.com/cwbudde/lispgo/internal/runtime"
)

// registerSequence binds the sequence operations. map and
// apply call back into eval.Apply as leaf (non-tail) invocations, the same
// way a native builtin's call to a user function is always a leaf frame
// per the evaluator's calling convention.
func registerSequence(env *runtime.Env) {
	def(env, "count", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		items, err := asSeq(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.Int(int64(len(items))), nil
	})

	def(env, "nth", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		items, err := asSeq(args[0])
		if err != nil {
			return nil, err
		}
		idx, err := asInt(args[1])
		if err != nil {
			return nil, err
		}
		if idx < 0 || int(idx) >= len(items) {
			return nil, runtime.Throwf("Index out of range")
		}
		return items[idx], nil
	})

	def(env, "first", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		items, err := asSeq(args[0])
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return runtime.Nil, nil
		}
		return items[0], nil
	})

	def(env, "rest", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		items, err := asSeq(args[0])
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return runtime.Eol, nil
		}
		return runtime.NewList(items[1:]...), nil
	})

	def(env, "cons", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		items, err := asSeq(args[1])
		if err != nil {
			return nil, err
		}
		return runtime.Cons(args[0], runtime.NewList(items...)), nil
	})

	def(env, "concat", func(args []runtime.Value) (runtime.Value, error) {
		var all []runtime.Value
		for _, a := range args {
			items, err := asSeq(a)
			if err != nil {
				return nil, err
			}
			all = append(all, items...)
		}
		return runtime.NewList(all...), nil
	})

	def(env, "conj", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireMinArity(args, 1); err != nil {
			return nil, err
		}
		switch t := args[0].(type) {
		case *runtime.ListValue:
			l := t
			for _, extra := range args[1:] {
				l = runtime.Cons(extra, l)
			}
			return l, nil
		case *runtime.VectorValue:
			items := make([]runtime.Value, len(t.Items), len(t.Items)+len(args)-1)
			copy(items, t.Items)
			items = append(items, args[1:]...)
			return runtime.NewVector(items), nil
		default:
			return nil, runtime.Throwf("Expected a sequence, found '%s'", args[0].String())
		}
	})

	def(env, "seq", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return nil, err
		}
		switch t := args[0].(type) {
		case runtime.NilValue:
			return runtime.Nil, nil
		case *runtime.ListValue:
			if t.IsEmpty() {
				return runtime.Nil, nil
			}
			return t, nil
		case *runtime.VectorValue:
			if len(t.Items) == 0 {
				return runtime.Nil, nil
			}
			return runtime.NewList(t.Items...), nil
		case *runtime.StrValue:
			if t.Value == "" {
				return runtime.Nil, nil
			}
			chars := make([]runtime.Value, 0, len(t.Value))
			for _, r := range t.Value {
				chars = append(chars, runtime.Str(string(r)))
			}
			return runtime.NewList(chars...), nil
		default:
			return nil, runtime.Throwf("Expected a sequence, found '%s'", args[0].String())
		}
	})

	def(env, "map", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		if err := asFn(args[0]); err != nil {
			return nil, err
		}
		items, err := asSeq(args[1])
		if err != nil {
			return nil, err
		}
		out := make([]runtime.Value, len(items))
		for i, it := range items {
			v, err := eval.Apply(args[0], []runtime.Value{it})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return runtime.NewList(out...), nil
	})

	def(env, "apply", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireMinArity(args, 2); err != nil {
			return nil, err
		}
		if err := asFn(args[0]); err != nil {
			return nil, err
		}
		last, err := asSeq(args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := make([]runtime.Value, 0, len(args)-2+len(last))
		callArgs = append(callArgs, args[1:len(args)-1]...)
		callArgs = append(callArgs, last...)
		return eval.Apply(args[0], callArgs)
	})
}
