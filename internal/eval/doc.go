// Package eval implements the evaluator: special forms, the tail-call
// trampoline, macro expansion, quasiquote expansion and function
// application. Eval is written as an explicit loop that
// overwrites its local form/env bindings for every tail position named in
// the spec rather than recursing, so tail calls run in constant additional
// Go stack.
package eval
