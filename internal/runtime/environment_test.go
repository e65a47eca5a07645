package runtime

import "testing"

func TestEnvGetSetShadowing(t *testing.T) {
	outer := NewEnv()
	outer.Set("x", Int(1))

	inner := NewEnclosedEnv(outer)
	inner.Set("x", Int(2))

	v, err := inner.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.(*IntValue).Value != 2 {
		t.Errorf("inner shadow: got %v", v)
	}

	v, err = outer.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.(*IntValue).Value != 1 {
		t.Errorf("outer unaffected: got %v", v)
	}
}

func TestEnvGetNotFound(t *testing.T) {
	env := NewEnv()
	_, err := env.Get("missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "'missing' not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestEnvCaseSensitive(t *testing.T) {
	env := NewEnv()
	env.Set("Foo", Int(1))
	if _, err := env.Get("foo"); err == nil {
		t.Fatal("expected case-sensitive lookup to fail")
	}
}

func TestNewParamEnvFixedArity(t *testing.T) {
	params := NewList(Sym("a"), Sym("b"))
	env, err := NewParamEnv(NewEnv(), params, []Value{Int(1), Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := env.Get("a")
	b, _ := env.Get("b")
	if a.(*IntValue).Value != 1 || b.(*IntValue).Value != 2 {
		t.Errorf("bound wrong values: %v %v", a, b)
	}
}

func TestNewParamEnvArityMismatch(t *testing.T) {
	params := NewList(Sym("a"), Sym("b"))
	_, err := NewParamEnv(NewEnv(), params, []Value{Int(1)})
	if err == nil {
		t.Fatal("expected arity error")
	}
	want := "Function requires 2 argument(s); got 1"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestNewParamEnvVariadic(t *testing.T) {
	params := NewList(Sym("a"), Sym("&"), Sym("rest"))
	env, err := NewParamEnv(NewEnv(), params, []Value{Int(1), Int(2), Int(3)})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := env.Get("a")
	rest, _ := env.Get("rest")
	if a.(*IntValue).Value != 1 {
		t.Errorf("a = %v", a)
	}
	restList, ok := rest.(*ListValue)
	if !ok || restList.Count() != 2 {
		t.Errorf("rest = %v", rest)
	}
}

func TestNewParamEnvVariadicZeroTrailing(t *testing.T) {
	params := NewList(Sym("&"), Sym("rest"))
	env, err := NewParamEnv(NewEnv(), params, nil)
	if err != nil {
		t.Fatal(err)
	}
	rest, _ := env.Get("rest")
	if !rest.(*ListValue).IsEmpty() {
		t.Errorf("expected empty rest binding, got %v", rest)
	}
}

func TestNewParamEnvVectorParams(t *testing.T) {
	params := NewVector([]Value{Sym("a"), Sym("b")})
	env, err := NewParamEnv(NewEnv(), params, []Value{Int(10), Int(20)})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := env.Get("a")
	if a.(*IntValue).Value != 10 {
		t.Errorf("a = %v", a)
	}
}
