package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerPredicates binds the type/shape predicates.
func registerPredicates(env *runtime.Env) {
	unary := func(name string, p func(runtime.Value) bool) {
		def(env, name, func(args []runtime.Value) (runtime.Value, error) {
			if err := requireArity(args, 1); err != nil {
				return nil, err
			}
			return runtime.Bool(p(args[0])), nil
		})
	}

	unary("nil?", func(v runtime.Value) bool { _, ok := v.(runtime.NilValue); return ok })
	unary("true?", func(v runtime.Value) bool { b, ok := v.(*runtime.BoolValue); return ok && b.Value })
	unary("false?", func(v runtime.Value) bool { b, ok := v.(*runtime.BoolValue); return ok && !b.Value })
	unary("symbol?", func(v runtime.Value) bool { _, ok := v.(*runtime.SymValue); return ok })
	unary("keyword?", func(v runtime.Value) bool { _, ok := v.(*runtime.KwValue); return ok })
	unary("list?", func(v runtime.Value) bool { _, ok := v.(*runtime.ListValue); return ok })
	unary("vector?", func(v runtime.Value) bool { _, ok := v.(*runtime.VectorValue); return ok })
	unary("map?", func(v runtime.Value) bool { _, ok := v.(*runtime.HashMapValue); return ok })
	unary("number?", func(v runtime.Value) bool { _, ok := v.(*runtime.IntValue); return ok })
	unary("string?", func(v runtime.Value) bool { _, ok := v.(*runtime.StrValue); return ok })
	unary("atom?", func(v runtime.Value) bool { _, ok := v.(*runtime.AtomValue); return ok })
	unary("fn?", func(v runtime.Value) bool {
		switch f := v.(type) {
		case *runtime.FnValue:
			return true
		case *runtime.LambdaValue:
			return !f.IsMacro
		default:
			return false
		}
	})
	unary("macro?", func(v runtime.Value) bool {
		lam, ok := v.(*runtime.LambdaValue)
		return ok && lam.IsMacro
	})

	// sequential? is true for List and Vector, false for Nil and
	// everything else.
	unary("sequential?", func(v runtime.Value) bool {
		switch v.(type) {
		case *runtime.ListValue, *runtime.VectorValue:
			return true
		default:
			return false
		}
	})

	unary("empty?", func(v runtime.Value) bool {
		switch t := v.(type) {
		case runtime.NilValue:
			return true
		case *runtime.ListValue:
			return t.IsEmpty()
		case *runtime.VectorValue:
			return len(t.Items) == 0
		default:
			return false
		}
	})
}
