package reader

import (
	"testing"

	"github.com/cwbudde/lispgo/internal/runtime"
)

func parse(t *testing.T, src string) runtime.Value {
	t.Helper()
	v, ok, err := Read(src)
	if err != nil {
		t.Fatalf("Read(%q) error: %v", src, err)
	}
	if !ok {
		t.Fatalf("Read(%q) returned ok=false", src)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	if v := parse(t, "42"); v.(*runtime.IntValue).Value != 42 {
		t.Errorf("42 -> %v", v)
	}
	if v := parse(t, "-7"); v.(*runtime.IntValue).Value != -7 {
		t.Errorf("-7 -> %v", v)
	}
	if v := parse(t, "true"); v != runtime.True {
		t.Errorf("true -> %v", v)
	}
	if v := parse(t, "false"); v != runtime.False {
		t.Errorf("false -> %v", v)
	}
	if v := parse(t, "nil"); v != runtime.Nil {
		t.Errorf("nil -> %v", v)
	}
	if v := parse(t, "abc"); v != runtime.Sym("abc") {
		t.Errorf("abc -> %v", v)
	}
	if v := parse(t, ":kw"); v != runtime.Kw("kw") {
		t.Errorf(":kw -> %v", v)
	}
}

func TestReadString(t *testing.T) {
	v := parse(t, `"hello\nworld"`)
	s, ok := v.(*runtime.StrValue)
	if !ok || s.Value != "hello\nworld" {
		t.Errorf(`"hello\nworld" -> %v`, v)
	}
}

func TestReadUnterminatedString(t *testing.T) {
	_, _, err := Read(`"abc`)
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
}

func TestReadList(t *testing.T) {
	v := parse(t, "(1 2 3)")
	l, ok := v.(*runtime.ListValue)
	if !ok || l.Count() != 3 {
		t.Errorf("(1 2 3) -> %v", v)
	}
}

func TestReadVector(t *testing.T) {
	v := parse(t, "[1 2 3]")
	vec, ok := v.(*runtime.VectorValue)
	if !ok || len(vec.Items) != 3 {
		t.Errorf("[1 2 3] -> %v", v)
	}
}

func TestReadHashMap(t *testing.T) {
	v := parse(t, `{"a" 1 :b 2}`)
	m, ok := v.(*runtime.HashMapValue)
	if !ok || m.Len() != 2 {
		t.Errorf(`{"a" 1 :b 2} -> %v`, v)
	}
}

func TestReadHashMapOddForms(t *testing.T) {
	_, _, err := Read(`{"a" 1 "b"}`)
	if err == nil {
		t.Fatal("expected odd-forms error")
	}
}

func TestReadHashMapInvalidKey(t *testing.T) {
	_, _, err := Read(`{1 2}`)
	if err == nil {
		t.Fatal("expected invalid-key error")
	}
}

func TestReadQuoteForms(t *testing.T) {
	v := parse(t, "'x")
	l := v.(*runtime.ListValue)
	if l.Head() != runtime.SymQuote {
		t.Errorf("'x -> %v", v)
	}

	v = parse(t, "`x")
	if v.(*runtime.ListValue).Head() != runtime.SymQuasiquote {
		t.Errorf("`x -> %v", v)
	}

	v = parse(t, "~x")
	if v.(*runtime.ListValue).Head() != runtime.SymUnquote {
		t.Errorf("~x -> %v", v)
	}

	v = parse(t, "~@x")
	if v.(*runtime.ListValue).Head() != runtime.SymSpliceUnquote {
		t.Errorf("~@x -> %v", v)
	}
}

func TestReadDerefSugar(t *testing.T) {
	v := parse(t, "@a")
	l := v.(*runtime.ListValue)
	if l.Head() != runtime.SymDeref || l.Tail().Head() != runtime.Sym("a") {
		t.Errorf("@a -> %v", v)
	}
}

func TestReadMetaSugar(t *testing.T) {
	v := parse(t, "^{:a 1} x")
	l := v.(*runtime.ListValue)
	if l.Head() != runtime.SymWithMeta {
		t.Errorf("^{:a 1} x -> %v", v)
	}
	elems := l.ToSlice()
	if elems[1] != runtime.Sym("x") {
		t.Errorf("with-meta object form = %v", elems[1])
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, ok, err := Read("")
	if err != nil || ok {
		t.Errorf("Read(\"\") = ok=%v err=%v", ok, err)
	}
	_, ok, err = Read("  ; just a comment")
	if err != nil || ok {
		t.Errorf("comment-only input: ok=%v err=%v", ok, err)
	}
}

func TestReadExtraneousInput(t *testing.T) {
	_, _, err := Read("1 2")
	if err == nil {
		t.Fatal("expected extraneous input error")
	}
}

func TestReadUnbalanced(t *testing.T) {
	_, _, err := Read("(1 2")
	if err == nil {
		t.Fatal("expected EOF parse error for unbalanced list")
	}
	_, _, err = Read(")")
	if err == nil {
		t.Fatal("expected parse error for a stray close paren")
	}
}

func TestReadNestedForms(t *testing.T) {
	v := parse(t, "(def! x [1 {:a 2} '(3 4)])")
	l := v.(*runtime.ListValue)
	if l.Count() != 3 {
		t.Fatalf("unexpected top-level form shape: %v", v)
	}
}
