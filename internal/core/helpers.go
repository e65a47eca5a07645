package core

import "github.com/cwbudde/lispgo/internal/runtime"

// requireArity enforces an exact argument count for builtins that, unlike
// user Lambdas, don't go through runtime.NewParamEnv's own arity checking.
func requireArity(args []runtime.Value, n int) error {
	if len(args) != n {
		return runtime.Throwf("Function requires %d argument(s); got %d", n, len(args))
	}
	return nil
}

func requireMinArity(args []runtime.Value, n int) error {
	if len(args) < n {
		return runtime.Throwf("Function requires %d or more argument(s); got %d", n, len(args))
	}
	return nil
}

func asInt(v runtime.Value) (int64, error) {
	i, ok := v.(*runtime.IntValue)
	if !ok {
		return 0, runtime.Throwf("Expected int, found '%s'", v.String())
	}
	return i.Value, nil
}

func asStr(v runtime.Value) (string, error) {
	s, ok := v.(*runtime.StrValue)
	if !ok {
		return "", runtime.Throwf("Expected string, found '%s'", v.String())
	}
	return s.Value, nil
}

func asSeq(v runtime.Value) ([]runtime.Value, error) {
	switch t := v.(type) {
	case runtime.NilValue:
		return nil, nil
	case *runtime.ListValue:
		return t.ToSlice(), nil
	case *runtime.VectorValue:
		return t.Items, nil
	default:
		return nil, runtime.Throwf("Expected a sequence, found '%s'", v.String())
	}
}

func asAtom(v runtime.Value) (*runtime.AtomValue, error) {
	a, ok := v.(*runtime.AtomValue)
	if !ok {
		return nil, runtime.Throwf("Expected atom, found '%s'", v.String())
	}
	return a, nil
}

func asFn(v runtime.Value) error {
	switch v.(type) {
	case *runtime.FnValue, *runtime.LambdaValue:
		return nil
	default:
		return runtime.Throwf("Expected Function, found '%s'", v.String())
	}
}
