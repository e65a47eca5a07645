// Package runtime implements the tagged-value model that every other
// lispgo package operates on: the reader produces these values, the
// evaluator consumes and produces them, the printer renders them back to
// text, and the environment maps symbol names to them.
//
// Values are deliberately represented as a small family of concrete types
// implementing the Value interface rather than as interface{}, keeping the
// runtime values a closed family of structs behind a single interface.
package runtime
