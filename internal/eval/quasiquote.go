package eval

import "github.com/cwbudde/lispgo/internal/runtime"

// symVec is the interned head symbol of the (vec LIST) constructor that
// quasiquote's vector handling expands to; see quasiquote below for the
// pinned choice between the two published vector semantics.
var symVec = runtime.Sym("vec")

// quasiquote expands a quasiquoted form. Vectors are handled by recursing over
// their elements exactly as for a list and wrapping the resulting
// cons/concat expression in (vec ...), which the evaluator's function
// application resolves via the "vec" core builtin that converts a list to
// a vector. This is the pinned choice between quasiquote's two published
// vector semantics: a quasi-quoted vector
// literal always reconstructs as a vector, including when nested inside a
// quasi-quoted list, not only at top level.
func quasiquote(form runtime.Value) runtime.Value {
	switch t := form.(type) {
	case *runtime.VectorValue:
		if len(t.Items) == 0 {
			return runtime.NewList(runtime.SymQuote, form)
		}
		return runtime.NewList(symVec, qqSeq(t.Items))
	case *runtime.ListValue:
		if t.IsEmpty() {
			return runtime.NewList(runtime.SymQuote, form)
		}
		elems := t.ToSlice()
		if len(elems) == 2 {
			if sym, ok := elems[0].(*runtime.SymValue); ok && sym == runtime.SymUnquote {
				return elems[1]
			}
		}
		return qqSeq(elems)
	default:
		return runtime.NewList(runtime.SymQuote, form)
	}
}

// qqSeq builds the (cons Q(first) Q(rest)) / (concat y Q(rest)) expression
// for a sequence's element slice, shared by the List and Vector cases.
func qqSeq(elems []runtime.Value) runtime.Value {
	if len(elems) == 0 {
		return runtime.Eol
	}
	first := elems[0]
	restExpr := qqSeq(elems[1:])

	if fl, ok := first.(*runtime.ListValue); ok && !fl.IsEmpty() {
		fe := fl.ToSlice()
		if sym, ok := fe[0].(*runtime.SymValue); ok && sym == runtime.SymSpliceUnquote && len(fe) == 2 {
			return runtime.NewList(runtime.SymConcat, fe[1], restExpr)
		}
	}
	return runtime.NewList(runtime.SymCons, quasiquote(first), restExpr)
}
