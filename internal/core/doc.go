// Package core builds the root environment's builtin bindings: arithmetic,
// comparison, predicates, constructors, sequence and hash-map operations,
// I/O, atoms, exceptions and metadata. Each builtin is a *runtime.FnValue
// wrapping a native Go closure; native calls are leaf frames in the
// evaluator's trampoline.
package core
