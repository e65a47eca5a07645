package eval

import "github.com/cwbudde/lispgo/internal/runtime"

// Eval evaluates form against env. It is structured as an
// outer trampoline loop: every special form named as a tail position in
// the spec (quasiquote's result, unquote's operand, let*'s body, do's
// final form, if's branch, a Lambda call's body) is handled by
// overwriting form/env and `continue`-ing the loop, never by a recursive
// Eval call, so those calls run in constant additional Go stack.
func Eval(form runtime.Value, env *runtime.Env) (runtime.Value, error) {
	for {
		expanded, err := macroExpand(form, env)
		if err != nil {
			return nil, err
		}
		form = expanded

		list, isList := form.(*runtime.ListValue)
		if !isList {
			return evalNonList(form, env)
		}
		if list.IsEmpty() {
			return list, nil
		}

		if sym, ok := list.Head().(*runtime.SymValue); ok {
			if step, matched, err := evalSpecialForm(sym, list, env); matched {
				if err != nil {
					return nil, err
				}
				if step.loop {
					form, env = step.form, step.env
					continue
				}
				return step.result, nil
			}
		}

		fn, args, err := evalApplication(list, env)
		if err != nil {
			return nil, err
		}

		switch f := fn.(type) {
		case *runtime.FnValue:
			return f.Native(args)
		case *runtime.LambdaValue:
			childEnv, err := runtime.NewParamEnv(f.Env, f.Params, args)
			if err != nil {
				return nil, err
			}
			form, env = f.Body, childEnv
			continue
		default:
			return nil, runtime.Throwf("Expected Function, found '%s'", fn.String())
		}
	}
}

// evalNonList evaluates every non-list form by case.
func evalNonList(form runtime.Value, env *runtime.Env) (runtime.Value, error) {
	switch t := form.(type) {
	case *runtime.SymValue:
		return env.Get(t.Name)
	case *runtime.VectorValue:
		out := make([]runtime.Value, len(t.Items))
		for i, e := range t.Items {
			v, err := Eval(e, env)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return runtime.NewVector(out), nil
	case *runtime.HashMapValue:
		keys := t.Keys()
		vals := t.Vals()
		pairs := make([]runtime.Value, 0, 2*len(keys))
		for i := range keys {
			v, err := Eval(vals[i], env)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, keys[i], v)
		}
		return runtime.NewHashMap(pairs...)
	default:
		// Kw, Int, Str, Nil, Bool, Fn, Lambda, Atom all self-evaluate.
		return form, nil
	}
}

// evalApplication evaluates a list's head and arguments left to right for
// ordinary function application.
func evalApplication(list *runtime.ListValue, env *runtime.Env) (runtime.Value, []runtime.Value, error) {
	elems := list.ToSlice()
	evaled := make([]runtime.Value, len(elems))
	for i, e := range elems {
		v, err := Eval(e, env)
		if err != nil {
			return nil, nil, err
		}
		evaled[i] = v
	}
	return evaled[0], evaled[1:], nil
}

// Apply invokes fn with args outside the trampoline (used by core builtins
// like apply, map and swap! that call back into a value as a leaf, not a
// tail, call).
func Apply(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch f := fn.(type) {
	case *runtime.FnValue:
		return f.Native(args)
	case *runtime.LambdaValue:
		childEnv, err := runtime.NewParamEnv(f.Env, f.Params, args)
		if err != nil {
			return nil, err
		}
		return Eval(f.Body, childEnv)
	default:
		return nil, runtime.Throwf("Expected Function, found '%s'", fn.String())
	}
}
