package reader

import "regexp"

// tokenRe matches, in order, the two-character splice-unquote token, the
// single special characters, a double-quoted string literal (including an
// unterminated one, so the parser can report it precisely), a line
// comment, or a run of "bare atom" characters. This mirrors the single
// regular-expression tokenizer a Mal-family reader typically uses.
var tokenRe = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// Tokenize splits src into tokens, discarding whitespace/commas between
// them and dropping comment tokens entirely.
func Tokenize(src string) []string {
	matches := tokenRe.FindAllStringSubmatch(src, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tok := m[1]
		if tok == "" {
			continue
		}
		if tok[0] == ';' {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
