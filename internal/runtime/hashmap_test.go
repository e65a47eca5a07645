package runtime

import "testing"

func TestEmptyHashMap(t *testing.T) {
	if EmptyHashMap.Len() != 0 {
		t.Errorf("Len() = %d", EmptyHashMap.Len())
	}
	if EmptyHashMap.String() != "{}" {
		t.Errorf("String() = %q", EmptyHashMap.String())
	}
}

func TestNewHashMapOddArgs(t *testing.T) {
	if _, err := NewHashMap(Str("a")); err == nil {
		t.Fatal("expected error for odd argument count")
	}
}

func TestHashMapAssocIsImmutable(t *testing.T) {
	m1, err := NewHashMap(Str("a"), Int(1))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := m1.Assoc(Str("b"), Int(2))
	if err != nil {
		t.Fatal(err)
	}
	if m1.Len() != 1 {
		t.Errorf("Assoc must not mutate the receiver; m1.Len() = %d", m1.Len())
	}
	if m2.Len() != 2 {
		t.Errorf("m2.Len() = %d", m2.Len())
	}
	if m1.Contains(Str("b")) {
		t.Error("m1 should not contain the key added via Assoc on m2")
	}
}

func TestHashMapAssocReplacesExisting(t *testing.T) {
	m1, _ := NewHashMap(Str("a"), Int(1))
	m2, err := m1.Assoc(Str("a"), Int(99))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := m2.Get(Str("a"))
	if !ok || v.(*IntValue).Value != 99 {
		t.Errorf("Get after replace = %v, %v", v, ok)
	}
	if m2.Len() != 1 {
		t.Errorf("replace should not grow the map; Len() = %d", m2.Len())
	}
}

func TestHashMapDissoc(t *testing.T) {
	m1, _ := NewHashMap(Str("a"), Int(1), Str("b"), Int(2))
	m2, err := m1.Dissoc(Str("a"))
	if err != nil {
		t.Fatal(err)
	}
	if m1.Len() != 2 {
		t.Error("Dissoc must not mutate the receiver")
	}
	if m2.Contains(Str("a")) {
		t.Error("m2 should no longer contain the dissoc'd key")
	}
	if !m2.Contains(Str("b")) {
		t.Error("m2 should still contain the untouched key")
	}
}

func TestHashMapKeyTypeRestriction(t *testing.T) {
	_, err := NewHashMap(Int(1), Str("v"))
	if err == nil {
		t.Fatal("expected error for non Str/Sym/Kw key")
	}
}

func TestHashMapDistinguishesKeyKinds(t *testing.T) {
	m, err := NewHashMap(Str("x"), Int(1), Sym("x"), Int(2), Kw("x"), Int(3))
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 distinct entries, got %d", m.Len())
	}
	sv, _ := m.Get(Str("x"))
	yv, _ := m.Get(Sym("x"))
	kv, _ := m.Get(Kw("x"))
	if sv.(*IntValue).Value != 1 || yv.(*IntValue).Value != 2 || kv.(*IntValue).Value != 3 {
		t.Errorf("got %v %v %v", sv, yv, kv)
	}
}

func TestHashMapKeysVals(t *testing.T) {
	m, _ := NewHashMap(Str("a"), Int(1), Str("b"), Int(2))
	keys := m.Keys()
	vals := m.Vals()
	if len(keys) != 2 || len(vals) != 2 {
		t.Fatalf("Keys/Vals length mismatch: %d %d", len(keys), len(vals))
	}
	for i, k := range keys {
		v, ok := m.Get(k)
		if !ok || !Equal(v, vals[i]) {
			t.Errorf("Keys/Vals not aligned at %d: %v -> %v, vals[%d] = %v", i, k, v, i, vals[i])
		}
	}
}
