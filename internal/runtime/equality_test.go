package runtime

import "testing"

func TestEqualScalars(t *testing.T) {
	if !Equal(Nil, Nil) {
		t.Error("Nil should equal Nil")
	}
	if !Equal(Int(1), Int(1)) {
		t.Error("equal ints by value should be Equal")
	}
	if Equal(Int(1), Int(2)) {
		t.Error("different ints must not be Equal")
	}
	if !Equal(Str("a"), Str("a")) {
		t.Error("equal strings by value should be Equal")
	}
	if !Equal(True, True) || Equal(True, False) {
		t.Error("bool equality is wrong")
	}
}

func TestEqualListVectorCross(t *testing.T) {
	l := NewList(Int(1), Int(2))
	v := NewVector([]Value{Int(1), Int(2)})
	if !Equal(l, v) {
		t.Error("a list and vector with the same elements must be Equal")
	}
	if !Equal(v, l) {
		t.Error("Equal must be symmetric across list/vector")
	}
	if Equal(l, NewVector([]Value{Int(1), Int(3)})) {
		t.Error("differing elements must not be Equal")
	}
	if Equal(l, NewVector([]Value{Int(1)})) {
		t.Error("differing length must not be Equal")
	}
}

func TestEqualNested(t *testing.T) {
	a := NewList(NewVector([]Value{Int(1), Int(2)}), Str("x"))
	b := NewVector([]Value{NewList(Int(1), Int(2)), Str("x")})
	if !Equal(a, b) {
		t.Error("nested sequence equality should recurse")
	}
}

func TestEqualHashMap(t *testing.T) {
	m1, _ := NewHashMap(Str("a"), Int(1))
	m2, _ := NewHashMap(Str("a"), Int(1))
	m3, _ := NewHashMap(Str("a"), Int(2))
	if !Equal(m1, m2) {
		t.Error("maps with the same entries should be Equal")
	}
	if Equal(m1, m3) {
		t.Error("maps with differing values should not be Equal")
	}
}

func TestEqualIdentityTypes(t *testing.T) {
	s1, s2 := Sym("x"), Sym("x")
	if !Equal(s1, s2) {
		t.Error("interned symbols of the same name should be Equal")
	}
	fn1 := NewFn("f", func(args []Value) (Value, error) { return Nil, nil })
	fn2 := NewFn("f", func(args []Value) (Value, error) { return Nil, nil })
	if Equal(fn1, fn2) {
		t.Error("distinct Fn values must not be Equal even with the same name")
	}
	a1 := NewAtom(Int(1))
	a2 := NewAtom(Int(1))
	if Equal(a1, a2) {
		t.Error("distinct Atom values must not be Equal even with the same contents")
	}
	if !Equal(a1, a1) {
		t.Error("an atom must be Equal to itself")
	}
}

func TestEqualAcrossDifferentTypes(t *testing.T) {
	if Equal(Int(1), Str("1")) {
		t.Error("an int and a string must never be Equal")
	}
	if Equal(Nil, False) {
		t.Error("Nil and False are distinct values")
	}
}
