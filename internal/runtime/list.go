package runtime

import "strings"

// ListValue is a singly-linked cons cell. The unique empty list is Eol, a
// distinguished sentinel distinct from Nil: (list? nil) is false but
// (list? Eol) is true. NewList, rest and the reader return Eol itself for
// an empty list; WithMeta on Eol is the exception and returns a distinct
// empty ListValue that carries the metadata.
type ListValue struct {
	head  Value
	tail  *ListValue
	empty bool
	meta  Value
}

// Eol is the unique empty list.
var Eol = &ListValue{empty: true}

// Cons prepends head onto tail, returning a new list. tail must not be nil;
// pass Eol to start a new list.
func Cons(head Value, tail *ListValue) *ListValue {
	return &ListValue{head: head, tail: tail}
}

// NewList builds a list from a slice of elements, in order.
func NewList(elems ...Value) *ListValue {
	l := Eol
	for i := len(elems) - 1; i >= 0; i-- {
		l = Cons(elems[i], l)
	}
	return l
}

func (l *ListValue) Type() string { return "list" }

func (l *ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	first := true
	for cur := l; !cur.empty; cur = cur.tail {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(cur.head.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (l *ListValue) Meta() Value { return metaOrNil(l.meta) }
func (l *ListValue) WithMeta(m Value) Value {
	return &ListValue{head: l.head, tail: l.tail, empty: l.empty, meta: m}
}

// IsEmpty reports whether l is Eol (or structurally empty).
func (l *ListValue) IsEmpty() bool { return l.empty }

// Head returns the first element. On Eol it returns a nil Value; callers
// must check IsEmpty first (the evaluator and core builtins do).
func (l *ListValue) Head() Value { return l.head }

// Tail returns the rest of the list: Eol for a one-element list, and a nil
// *ListValue for Eol itself.
func (l *ListValue) Tail() *ListValue { return l.tail }

// Count returns the number of elements.
func (l *ListValue) Count() int {
	n := 0
	for cur := l; !cur.empty; cur = cur.tail {
		n++
	}
	return n
}

// ToSlice materializes the list's elements in order.
func (l *ListValue) ToSlice() []Value {
	out := make([]Value, 0, l.Count())
	for cur := l; !cur.empty; cur = cur.tail {
		out = append(out, cur.head)
	}
	return out
}

// Append concatenates the elements of lists, in order, returning a
// freshly built list (concat's non-mutating semantics).
func Append(lists ...*ListValue) *ListValue {
	var all []Value
	for _, l := range lists {
		all = append(all, l.ToSlice()...)
	}
	return NewList(all...)
}
