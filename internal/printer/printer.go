// Package printer renders runtime values back to text, the
// textual-surface half of the reader/printer round-trip contract.
package printer

import (
	"strings"

	"github.com/cwbudde/lispgo/internal/runtime"
)

// Print renders v. When readable is true, strings are quoted and escaped
// so that reader.Read(Print(v, true)) reconstructs an equal value (the
// round-trip law); when false, strings print as their raw bytes (the `str`
// builtin's mode).
func Print(v runtime.Value, readable bool) string {
	switch t := v.(type) {
	case runtime.NilValue:
		return "nil"
	case *runtime.BoolValue:
		if t.Value {
			return "true"
		}
		return "false"
	case *runtime.IntValue:
		return t.String()
	case *runtime.StrValue:
		if readable {
			return quoteString(t.Value)
		}
		return t.Value
	case *runtime.SymValue:
		return t.Name
	case *runtime.KwValue:
		return ":" + t.Name
	case *runtime.ListValue:
		return printSeq("(", ")", t.ToSlice(), readable)
	case *runtime.VectorValue:
		return printSeq("[", "]", t.Items, readable)
	case *runtime.HashMapValue:
		return printHashMap(t, readable)
	case *runtime.FnValue:
		return "#<function>"
	case *runtime.LambdaValue:
		if t.IsMacro {
			return "#<macro>"
		}
		return "#<lambda>"
	case *runtime.AtomValue:
		return "(atom " + Print(t.Value, readable) + ")"
	default:
		return t.String()
	}
}

func printSeq(open, close string, items []runtime.Value, readable bool) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, e := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Print(e, readable))
	}
	sb.WriteString(close)
	return sb.String()
}

func printHashMap(m *runtime.HashMapValue, readable bool) string {
	var sb strings.Builder
	sb.WriteByte('{')
	keys := m.Keys()
	vals := m.Vals()
	for i := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Print(keys[i], readable))
		sb.WriteByte(' ')
		sb.WriteString(Print(vals[i], readable))
	}
	sb.WriteByte('}')
	return sb.String()
}

// quoteString escapes a string for readable printing: backslash, double
// quote and newline are escaped, matching the reader's unescaping rule.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// PrStr joins each value's readable (or not) printing with a separator, the
// shared helper behind the pr-str/str core builtins.
func PrStr(vs []runtime.Value, readable bool, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Print(v, readable)
	}
	return strings.Join(parts, sep)
}
