package runtime

import "testing"

func TestNewVectorString(t *testing.T) {
	v := NewVector([]Value{Int(1), Int(2), Int(3)})
	if v.Type() != "vector" {
		t.Errorf("Type() = %q", v.Type())
	}
	if v.String() != "[1 2 3]" {
		t.Errorf("String() = %q", v.String())
	}
}

func TestEmptyVectorString(t *testing.T) {
	v := NewVector(nil)
	if v.String() != "[]" {
		t.Errorf("String() = %q", v.String())
	}
}

func TestVectorMetaDoesNotAliasItems(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	v := NewVector(items)
	tagged := v.WithMeta(Str("tag")).(*VectorValue)
	tagged.Items[0] = Int(99)
	if v.Items[0].(*IntValue).Value != 1 {
		t.Error("WithMeta must copy Items, not alias the original slice")
	}
	if tagged.Meta().String() != "tag" {
		t.Errorf("Meta() = %v", tagged.Meta())
	}
	if v.Meta() != Nil {
		t.Errorf("original vector should carry no metadata, got %v", v.Meta())
	}
}
