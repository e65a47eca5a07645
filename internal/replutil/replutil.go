// Package replutil provides small terminal-formatting helpers for the
// interactive REPL: continuation-prompt alignment accounting for
// wide/combining runes.
package replutil

import "github.com/mattn/go-runewidth"

// ContinuationPrompt returns a prompt of the same on-screen width as
// primary, so a multi-line form's continuation lines line up under the
// first prompt instead of under its byte length.
func ContinuationPrompt(primary string) string {
	width := runewidth.StringWidth(primary)
	out := make([]byte, width)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// Balanced reports whether tokens contains a matched set of (), [] and {}
// delimiters, used by the REPL to decide whether a partially typed form
// needs another line of input before it can be read.
func Balanced(tokens []string) bool {
	depth := 0
	for _, t := range tokens {
		switch t {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth < 0 {
				return true // unbalanced the other way; let the reader report it
			}
		}
	}
	return depth == 0
}
