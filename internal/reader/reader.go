package reader

import "github.com/cwbudde/lispgo/internal/runtime"

// Read tokenizes and parses one complete form from text. ok is false when
// text is empty or whitespace/comment-only, matching the embedding API's
// read(text) -> Option<Value>. Extra tokens left over after the
// first complete form raise "Extraneous input".
func Read(text string) (val runtime.Value, ok bool, err error) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil, false, nil
	}

	p := NewParser(tokens)
	form, err := p.Read()
	if err != nil {
		return nil, false, err
	}
	if p.pos < len(p.tokens) {
		return nil, false, runtime.Throwf("Extraneous input: '%s'", p.tokens[p.pos])
	}
	return form, true, nil
}
