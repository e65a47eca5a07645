package runtime

import "testing"

func TestEolIdentity(t *testing.T) {
	if !Eol.IsEmpty() {
		t.Fatal("Eol must be empty")
	}
	l := NewList()
	if l != Eol {
		t.Error("NewList() with no elements must return Eol itself")
	}
}

func TestConsAndTraversal(t *testing.T) {
	l := Cons(Int(1), Cons(Int(2), Cons(Int(3), Eol)))
	if l.Count() != 3 {
		t.Fatalf("Count() = %d", l.Count())
	}
	if l.Head().(*IntValue).Value != 1 {
		t.Errorf("Head() = %v", l.Head())
	}
	if l.Tail().Head().(*IntValue).Value != 2 {
		t.Errorf("Tail().Head() = %v", l.Tail().Head())
	}
}

func TestNewListAndToSlice(t *testing.T) {
	l := NewList(Int(1), Int(2), Int(3))
	slice := l.ToSlice()
	if len(slice) != 3 {
		t.Fatalf("ToSlice length = %d", len(slice))
	}
	for i, want := range []int64{1, 2, 3} {
		if slice[i].(*IntValue).Value != want {
			t.Errorf("slice[%d] = %v, want %d", i, slice[i], want)
		}
	}
}

func TestListString(t *testing.T) {
	l := NewList(Int(1), Int(2))
	if l.String() != "(1 2)" {
		t.Errorf("String() = %q", l.String())
	}
	if Eol.String() != "()" {
		t.Errorf("Eol.String() = %q", Eol.String())
	}
}

func TestAppend(t *testing.T) {
	a := NewList(Int(1), Int(2))
	b := NewList(Int(3))
	c := Append(a, b)
	if c.String() != "(1 2 3)" {
		t.Errorf("Append result = %q", c.String())
	}
	if a.Count() != 2 {
		t.Error("Append must not mutate its inputs")
	}
	if Append(Eol, Eol) != Eol {
		t.Error("Append of two empty lists should yield Eol")
	}
}

func TestListMeta(t *testing.T) {
	l := NewList(Int(1))
	if l.Meta() != Nil {
		t.Errorf("fresh list should carry no metadata, got %v", l.Meta())
	}
	tagged := l.WithMeta(Str("note")).(*ListValue)
	if tagged.Meta().String() != "note" {
		t.Errorf("WithMeta did not attach metadata: %v", tagged.Meta())
	}
	if tagged.String() != l.String() {
		t.Error("WithMeta must preserve the list's elements")
	}
}
