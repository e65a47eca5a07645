package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerArithmetic binds the four binary arithmetic operators over Int
// (+ - * / over Int, binary).
func registerArithmetic(env *runtime.Env) {
	def(env, "+", func(args []runtime.Value) (runtime.Value, error) { return binaryIntOp("+", args, func(a, b int64) int64 { return a + b }) })
	def(env, "-", func(args []runtime.Value) (runtime.Value, error) { return binaryIntOp("-", args, func(a, b int64) int64 { return a - b }) })
	def(env, "*", func(args []runtime.Value) (runtime.Value, error) { return binaryIntOp("*", args, func(a, b int64) int64 { return a * b }) })
	def(env, "/", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		a, err := asInt(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt(args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, runtime.Throwf("Division by zero")
		}
		return runtime.Int(a / b), nil
	})
}

func binaryIntOp(name string, args []runtime.Value, op func(a, b int64) int64) (runtime.Value, error) {
	if err := requireArity(args, 2); err != nil {
		return nil, err
	}
	a, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return runtime.Int(op(a, b)), nil
}
