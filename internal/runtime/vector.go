package runtime

import "strings"

// VectorValue is an ordered sequence with indexed access, structurally
// distinct from ListValue but sequence-compatible (cross-equal with List
// when elements match pairwise; see Equal in equality.go).
type VectorValue struct {
	Items []Value
	meta  Value
}

// NewVector builds a vector from a slice, which it takes ownership of.
func NewVector(items []Value) *VectorValue {
	return &VectorValue{Items: items}
}

func (v *VectorValue) Type() string { return "vector" }

func (v *VectorValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (v *VectorValue) Meta() Value { return metaOrNil(v.meta) }
func (v *VectorValue) WithMeta(m Value) Value {
	items := make([]Value, len(v.Items))
	copy(items, v.Items)
	return &VectorValue{Items: items, meta: m}
}
