package runtime

// Equal implements the structural/identity split: structural
// equality for List, Vector (cross-equal between the two), HashMap, Str,
// Int, Bool and Nil; identity-based equality for Sym, Kw, Fn, Lambda and
// Atom (interning already makes Sym/Kw identity coincide with name
// equality, so a plain pointer/value comparison is correct for those).
func Equal(a, b Value) bool {
	aSeq, aIsSeq := asSequence(a)
	bSeq, bIsSeq := asSequence(b)
	if aIsSeq && bIsSeq {
		return equalSlices(aSeq, bSeq)
	}

	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case *BoolValue:
		bv, ok := b.(*BoolValue)
		return ok && av.Value == bv.Value
	case *IntValue:
		bv, ok := b.(*IntValue)
		return ok && av.Value == bv.Value
	case *StrValue:
		bv, ok := b.(*StrValue)
		return ok && av.Value == bv.Value
	case *SymValue:
		bv, ok := b.(*SymValue)
		return ok && av == bv
	case *KwValue:
		bv, ok := b.(*KwValue)
		return ok && av == bv
	case *HashMapValue:
		bv, ok := b.(*HashMapValue)
		return ok && equalHashMaps(av, bv)
	case *FnValue:
		bv, ok := b.(*FnValue)
		return ok && av == bv
	case *LambdaValue:
		bv, ok := b.(*LambdaValue)
		return ok && av == bv
	case *AtomValue:
		bv, ok := b.(*AtomValue)
		return ok && av == bv
	default:
		return false
	}
}

// asSequence reports whether v is List or Vector and returns its elements;
// this is what makes (= (list 1 2) [1 2]) hold.
func asSequence(v Value) ([]Value, bool) {
	switch t := v.(type) {
	case *ListValue:
		return t.ToSlice(), true
	case *VectorValue:
		return t.Items, true
	default:
		return nil, false
	}
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalHashMaps(a, b *HashMapValue) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, e := range a.entries {
		bv, ok := b.Get(e.k)
		if !ok || !Equal(e.v, bv) {
			return false
		}
	}
	return true
}
