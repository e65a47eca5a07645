package eval

import "github.com/cwbudde/lispgo/internal/runtime"

// macroCallLambda returns the macro Lambda that form's head resolves to in
// env, or nil if form isn't a macro call.
func macroCallLambda(form runtime.Value, env *runtime.Env) *runtime.LambdaValue {
	list, ok := form.(*runtime.ListValue)
	if !ok || list.IsEmpty() {
		return nil
	}
	sym, ok := list.Head().(*runtime.SymValue)
	if !ok {
		return nil
	}
	frame := env.Find(sym.Name)
	if frame == nil {
		return nil
	}
	val, _ := frame.Get(sym.Name)
	lam, ok := val.(*runtime.LambdaValue)
	if !ok || !lam.IsMacro {
		return nil
	}
	return lam
}

// macroExpand applies a macro's Lambda to the unevaluated argument list and
// repeats until the result is no longer a macro call. Regular
// Eval calls this once per trampoline iteration before dispatch.
func macroExpand(form runtime.Value, env *runtime.Env) (runtime.Value, error) {
	for {
		lam := macroCallLambda(form, env)
		if lam == nil {
			return form, nil
		}
		args := form.(*runtime.ListValue).Tail().ToSlice()
		childEnv, err := runtime.NewParamEnv(lam.Env, lam.Params, args)
		if err != nil {
			return nil, err
		}
		expanded, err := Eval(lam.Body, childEnv)
		if err != nil {
			return nil, err
		}
		form = expanded
	}
}
