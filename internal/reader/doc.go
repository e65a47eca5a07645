// Package reader tokenizes Lisp source text and parses it into runtime
// values. It is pure and stateless once tokens are extracted:
// Read never touches an environment or mutates shared state beyond the
// process-global symbol/keyword interning tables in package runtime.
package reader
