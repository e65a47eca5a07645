package eval

import "github.com/cwbudde/lispgo/internal/runtime"

// step is what a special form hands back to Eval's trampoline: either a
// final result, or a (form, env) pair to loop on in tail position.
type step struct {
	result runtime.Value
	form   runtime.Value
	env    *runtime.Env
	loop   bool
}

func finalStep(v runtime.Value) step { return step{result: v} }
func loopStep(form runtime.Value, env *runtime.Env) step {
	return step{form: form, env: env, loop: true}
}

// evalSpecialForm dispatches on a list's head symbol (compared by identity
// against the interned special-form symbols) and returns
// matched=false if sym does not name a special form, in which case Eval
// falls through to ordinary function application.
func evalSpecialForm(sym *runtime.SymValue, list *runtime.ListValue, env *runtime.Env) (step, bool, error) {
	switch sym {
	case runtime.SymQuote:
		s, err := evalQuote(list)
		return s, true, err
	case runtime.SymQuasiquote:
		s, err := evalQuasiquote(list, env)
		return s, true, err
	case runtime.SymUnquote:
		s, err := evalUnquote(list, env)
		return s, true, err
	case runtime.SymDef:
		s, err := evalDef(list, env, false)
		return s, true, err
	case runtime.SymDefMacro:
		s, err := evalDef(list, env, true)
		return s, true, err
	case runtime.SymMacroExpand:
		s, err := evalMacroExpandForm(list, env)
		return s, true, err
	case runtime.SymLet:
		s, err := evalLet(list, env)
		return s, true, err
	case runtime.SymDo:
		s, err := evalDo(list, env)
		return s, true, err
	case runtime.SymIf:
		s, err := evalIf(list, env)
		return s, true, err
	case runtime.SymFn:
		s, err := evalFnStar(list, env)
		return s, true, err
	case runtime.SymTry:
		s, err := evalTry(list, env)
		return s, true, err
	default:
		return step{}, false, nil
	}
}

func evalQuote(list *runtime.ListValue) (step, error) {
	args := list.Tail()
	if args.IsEmpty() {
		return step{}, runtime.Throwf("quote requires 1 argument")
	}
	return finalStep(args.Head()), nil
}

func evalQuasiquote(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail()
	if args.IsEmpty() {
		return step{}, runtime.Throwf("quasiquote requires 1 argument")
	}
	return loopStep(quasiquote(args.Head()), env), nil
}

func evalUnquote(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail()
	if args.IsEmpty() {
		return step{}, runtime.Throwf("unquote requires 1 argument")
	}
	return loopStep(args.Head(), env), nil
}

func evalDef(list *runtime.ListValue, env *runtime.Env, macro bool) (step, error) {
	args := list.Tail()
	if args.IsEmpty() || args.Tail().IsEmpty() {
		name := "def!"
		if macro {
			name = "defmacro!"
		}
		return step{}, runtime.Throwf("%s requires 2 arguments", name)
	}
	sym, ok := args.Head().(*runtime.SymValue)
	if !ok {
		return step{}, runtime.Throwf("Expected symbol, found '%s'", args.Head().String())
	}
	val, err := Eval(args.Tail().Head(), env)
	if err != nil {
		return step{}, err
	}
	if macro {
		lam, ok := val.(*runtime.LambdaValue)
		if !ok {
			return step{}, runtime.Throwf("defmacro! requires a fn* value, found '%s'", val.String())
		}
		val = lam.AsMacro()
	}
	env.Set(sym.Name, val)
	return finalStep(val), nil
}

func evalMacroExpandForm(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail()
	if args.IsEmpty() {
		return step{}, runtime.Throwf("macroexpand requires 1 argument")
	}
	expanded, err := macroExpand(args.Head(), env)
	if err != nil {
		return step{}, err
	}
	return finalStep(expanded), nil
}

// evalLet handles (let* bindings body): bindings is a List or Vector of
// alternating symbol/value-form pairs, bound left to right in a fresh
// child environment, each binding visible to subsequent ones.
func evalLet(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail()
	if args.IsEmpty() || args.Tail().IsEmpty() {
		return step{}, runtime.Throwf("let* requires bindings and a body")
	}
	bindings := args.Head()
	body := args.Tail().Head()

	var pairs []runtime.Value
	switch b := bindings.(type) {
	case *runtime.ListValue:
		pairs = b.ToSlice()
	case *runtime.VectorValue:
		pairs = b.Items
	default:
		return step{}, runtime.Throwf("let* bindings must be a list or vector, found '%s'", bindings.String())
	}
	if len(pairs)%2 != 0 {
		return step{}, runtime.Throwf("let* bindings must have an even number of forms")
	}

	child := runtime.NewEnclosedEnv(env)
	for i := 0; i < len(pairs); i += 2 {
		sym, ok := pairs[i].(*runtime.SymValue)
		if !ok {
			return step{}, runtime.Throwf("let* binding name must be a symbol, found '%s'", pairs[i].String())
		}
		val, err := Eval(pairs[i+1], child)
		if err != nil {
			return step{}, err
		}
		child.Set(sym.Name, val)
	}
	return loopStep(body, child), nil
}

// evalDo handles (do e1 ... en): all but the last are evaluated for
// effect, left to right; the last is looped on in tail position. An empty
// do returns Nil.
func evalDo(list *runtime.ListValue, env *runtime.Env) (step, error) {
	elems := list.Tail().ToSlice()
	if len(elems) == 0 {
		return finalStep(runtime.Nil), nil
	}
	for _, e := range elems[:len(elems)-1] {
		if _, err := Eval(e, env); err != nil {
			return step{}, err
		}
	}
	return loopStep(elems[len(elems)-1], env), nil
}

func evalIf(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail().ToSlice()
	if len(args) < 2 || len(args) > 3 {
		return step{}, runtime.Throwf("if requires 2 or 3 arguments")
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return step{}, err
	}
	if runtime.Truthy(cond) {
		return loopStep(args[1], env), nil
	}
	if len(args) == 3 {
		return loopStep(args[2], env), nil
	}
	return finalStep(runtime.Nil), nil
}

func evalFnStar(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail().ToSlice()
	if len(args) != 2 {
		return step{}, runtime.Throwf("Too many arguments for fn*")
	}
	switch args[0].(type) {
	case *runtime.ListValue, *runtime.VectorValue:
	default:
		return step{}, runtime.Throwf("fn* parameter list must be a list or vector, found '%s'", args[0].String())
	}
	return finalStep(&runtime.LambdaValue{Params: args[0], Body: args[1], Env: env}), nil
}

// evalTry handles (try* E (catch* b H)), with the single recovery point
// a Thrown error raised while evaluating E binds
// its value to b and loops on H in a child environment (tail position).
func evalTry(list *runtime.ListValue, env *runtime.Env) (step, error) {
	args := list.Tail().ToSlice()
	if len(args) == 0 || len(args) > 2 {
		return step{}, runtime.Throwf("Incorrect try/catch syntax")
	}

	result, err := Eval(args[0], env)
	if err == nil {
		return finalStep(result), nil
	}

	thrown, ok := err.(*runtime.Thrown)
	if !ok {
		return step{}, err
	}
	if len(args) != 2 {
		// No catch* clause: the exception propagates.
		return step{}, err
	}

	clause, ok := args[1].(*runtime.ListValue)
	if !ok || clause.IsEmpty() {
		return step{}, runtime.Throwf("Incorrect try/catch syntax")
	}
	clauseElems := clause.ToSlice()
	if len(clauseElems) != 3 {
		return step{}, runtime.Throwf("Incorrect try/catch syntax")
	}
	catchSym, ok := clauseElems[0].(*runtime.SymValue)
	if !ok || catchSym != runtime.SymCatch {
		return step{}, runtime.Throwf("Incorrect try/catch syntax")
	}
	bindSym, ok := clauseElems[1].(*runtime.SymValue)
	if !ok {
		return step{}, runtime.Throwf("Incorrect try/catch syntax")
	}

	child := runtime.NewEnclosedEnv(env)
	child.Set(bindSym.Name, thrown.Val)
	return loopStep(clauseElems[2], child), nil
}
