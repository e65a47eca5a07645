package core

import "github.com/cwbudde/lispgo/internal/runtime"

// NewEnv builds a fresh root environment seeded with every core builtin
// named by the language, plus additive restorations/extensions adopted
// from the wider Mal-family ecosystem (vec, gensym, persist-atom).
func NewEnv() *runtime.Env {
	env := runtime.NewEnv()
	registerArithmetic(env)
	registerComparison(env)
	registerPredicates(env)
	registerConstructors(env)
	registerSequence(env)
	registerHashMap(env)
	registerIO(env)
	registerAtom(env)
	registerException(env)
	registerMeta(env)
	registerPersistAtom(env)
	return env
}

func def(env *runtime.Env, name string, fn func(args []runtime.Value) (runtime.Value, error)) {
	env.Set(name, runtime.NewFn(name, fn))
}
