package runtime

import (
	"sort"
	"strings"
)

// HashKey is the canonical comparison/ordering key for a hash-map entry.
// Only Str, Sym and Kw may be hash-map keys; the kind prefix
// keeps a Str "x" distinct from a Sym x or Kw :x.
type HashKey string

func hashKeyOf(v Value) (HashKey, error) {
	switch k := v.(type) {
	case *StrValue:
		return HashKey("s:" + k.Value), nil
	case *SymValue:
		return HashKey("y:" + k.Name), nil
	case *KwValue:
		return HashKey("k:" + k.Name), nil
	default:
		return "", Throwf("Expected Str, Sym or Kw as hash-map key, found '%s'", v.String())
	}
}

type hmEntry struct {
	key HashKey
	k   Value
	v   Value
}

// HashMapValue is a persistent, key-ordered mapping from HashKey to Value.
// assoc/dissoc never mutate: they return a new HashMapValue (spec's
// non-mutating constructor rule).
type HashMapValue struct {
	entries []hmEntry // kept sorted by key for deterministic, stable printing
	meta    Value
}

// EmptyHashMap is a convenience zero-entry map; NewHashMap with no pairs
// also produces an equivalent (but distinct) empty map.
var EmptyHashMap = &HashMapValue{}

// NewHashMap builds a map from alternating key/value pairs.
func NewHashMap(pairs ...Value) (*HashMapValue, error) {
	if len(pairs)%2 != 0 {
		return nil, Throwf("hash-map requires an even number of arguments")
	}
	m := &HashMapValue{}
	for i := 0; i < len(pairs); i += 2 {
		var err error
		m, err = m.Assoc(pairs[i], pairs[i+1])
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *HashMapValue) Type() string { return "map" }

func (m *HashMapValue) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.k.String())
		sb.WriteByte(' ')
		sb.WriteString(e.v.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (m *HashMapValue) Meta() Value { return metaOrNil(m.meta) }
func (m *HashMapValue) WithMeta(meta Value) Value {
	entries := make([]hmEntry, len(m.entries))
	copy(entries, m.entries)
	return &HashMapValue{entries: entries, meta: meta}
}

// Assoc returns a new map with key bound to val, replacing any existing
// binding for key.
func (m *HashMapValue) Assoc(key, val Value) (*HashMapValue, error) {
	hk, err := hashKeyOf(key)
	if err != nil {
		return nil, err
	}
	entries := make([]hmEntry, 0, len(m.entries)+1)
	inserted := false
	for _, e := range m.entries {
		if e.key == hk {
			entries = append(entries, hmEntry{key: hk, k: key, v: val})
			inserted = true
			continue
		}
		entries = append(entries, e)
	}
	if !inserted {
		entries = append(entries, hmEntry{key: hk, k: key, v: val})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return &HashMapValue{entries: entries}, nil
}

// Dissoc returns a new map with key removed, if present.
func (m *HashMapValue) Dissoc(key Value) (*HashMapValue, error) {
	hk, err := hashKeyOf(key)
	if err != nil {
		return nil, err
	}
	entries := make([]hmEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.key == hk {
			continue
		}
		entries = append(entries, e)
	}
	return &HashMapValue{entries: entries}, nil
}

// Get returns the value bound to key, and whether it was found.
func (m *HashMapValue) Get(key Value) (Value, bool) {
	hk, err := hashKeyOf(key)
	if err != nil {
		return nil, false
	}
	for _, e := range m.entries {
		if e.key == hk {
			return e.v, true
		}
	}
	return nil, false
}

// Contains reports whether key is bound.
func (m *HashMapValue) Contains(key Value) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the bound keys in key order.
func (m *HashMapValue) Keys() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.k
	}
	return out
}

// Vals returns the bound values, in the same order as Keys.
func (m *HashMapValue) Vals() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.v
	}
	return out
}

// Len returns the number of entries.
func (m *HashMapValue) Len() int { return len(m.entries) }
