package runtime

import (
	"fmt"
	"strconv"
)

// Value is the runtime representation of every Lisp datum: the result of
// reading source text, the argument and return values of evaluation, and
// the operand of every core builtin.
type Value interface {
	// Type returns the value's kind tag (e.g. "nil", "int", "list"),
	// used in error messages.
	Type() string
	// String renders the value as plain text for error messages; the
	// text that pr-str, str and the REPL show comes from printer.Print.
	String() string
}

// Meta is implemented by values that may carry an attached metadata value:
// Lambda, List, Vector, HashMap and Fn. with-meta/meta operate through it.
type Meta interface {
	Meta() Value
	WithMeta(m Value) Value
}

// NilValue is the unique Nil singleton's concrete type.
type NilValue struct{}

func (NilValue) Type() string   { return "nil" }
func (NilValue) String() string { return "nil" }

// Nil is the sole Nil value. It is distinct from Eol, the empty list.
var Nil Value = NilValue{}

// BoolValue is true or false. Only two instances ever exist: True and False.
type BoolValue struct {
	Value bool
}

func (b *BoolValue) Type() string { return "bool" }
func (b *BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// True and False are the only BoolValue instances; comparisons may use
// pointer identity or the Value field interchangeably.
var (
	True  Value = &BoolValue{Value: true}
	False Value = &BoolValue{Value: false}
)

// Bool returns True or False for a Go bool, reusing the singletons.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy implements the language's truthiness rule: everything is truthy
// except false and nil.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case NilValue:
		return false
	case *BoolValue:
		return t.Value
	default:
		return true
	}
}

// IntValue is a machine integer.
type IntValue struct {
	Value int64
}

func (i *IntValue) Type() string   { return "int" }
func (i *IntValue) String() string { return strconv.FormatInt(i.Value, 10) }

// Int is a convenience constructor.
func Int(v int64) *IntValue { return &IntValue{Value: v} }

// StrValue is a UTF-8 string. Str values also carry thrown/raised error
// messages per the interpreter's single unwinding mechanism (see Thrown).
type StrValue struct {
	Value string
}

func (s *StrValue) Type() string   { return "string" }
func (s *StrValue) String() string { return s.Value }

// Str is a convenience constructor.
func Str(v string) *StrValue { return &StrValue{Value: v} }

// FnValue wraps a native (Go-implemented) callable. Native calls are leaf
// frames: they never participate in the evaluator's tail-call trampoline.
type FnValue struct {
	Name   string
	Native func(args []Value) (Value, error)
	meta   Value
}

func (f *FnValue) Type() string   { return "function" }
func (f *FnValue) String() string { return "#<function:" + f.Name + ">" }

func (f *FnValue) Meta() Value { return metaOrNil(f.meta) }
func (f *FnValue) WithMeta(m Value) Value {
	return &FnValue{Name: f.Name, Native: f.Native, meta: m}
}

// NewFn builds a named native function value.
func NewFn(name string, fn func(args []Value) (Value, error)) *FnValue {
	return &FnValue{Name: name, Native: fn}
}

// LambdaValue is a user-defined function created by fn*, closing over the
// environment in which it was defined. IsMacro flips how the evaluator
// treats calls whose head resolves to this value.
type LambdaValue struct {
	Params  Value // List or Vector of Sym, optionally containing '&'
	Body    Value
	Env     *Env
	IsMacro bool
	meta    Value
}

func (l *LambdaValue) Type() string { return "lambda" }
func (l *LambdaValue) String() string {
	if l.IsMacro {
		return "#<macro>"
	}
	return "#<lambda>"
}

func (l *LambdaValue) Meta() Value { return metaOrNil(l.meta) }
func (l *LambdaValue) WithMeta(m Value) Value {
	return &LambdaValue{Params: l.Params, Body: l.Body, Env: l.Env, IsMacro: l.IsMacro, meta: m}
}

// AsMacro returns a copy of the Lambda marked as a macro, used by defmacro!.
func (l *LambdaValue) AsMacro() *LambdaValue {
	return &LambdaValue{Params: l.Params, Body: l.Body, Env: l.Env, IsMacro: true, meta: l.meta}
}

// AtomValue is the sole mutable runtime value: a single-slot reference
// cell whose contents may be replaced by reset!/swap!.
type AtomValue struct {
	Value Value
}

func (a *AtomValue) Type() string   { return "atom" }
func (a *AtomValue) String() string { return "(atom " + a.Value.String() + ")" }

// NewAtom wraps a value in a fresh atom.
func NewAtom(v Value) *AtomValue { return &AtomValue{Value: v} }

func metaOrNil(m Value) Value {
	if m == nil {
		return Nil
	}
	return m
}

// Thrown is the single error type carried by the interpreter's host-level
// unwinding mechanism: every interpreter-raised error and
// every user (throw ...) call is wrapped in one of these. try*/catch*
// recovers it; everywhere else it propagates like a normal Go error.
type Thrown struct {
	Val Value
}

func (t *Thrown) Error() string { return t.Val.String() }

// Throw wraps v in a Thrown error.
func Throw(v Value) error { return &Thrown{Val: v} }

// Throwf wraps a formatted Str message in a Thrown error, the shape used
// by every interpreter-raised error message (parse/name/arity/type/shape
// errors are all plain Str values).
func Throwf(format string, args ...any) error {
	return &Thrown{Val: Str(fmt.Sprintf(format, args...))}
}
