package reader

import (
	"strconv"
	"strings"

	"github.com/cwbudde/lispgo/internal/runtime"
)

// Parser is a recursive-descent reader over a pre-tokenized stream.
type Parser struct {
	tokens []string
	pos    int
}

// NewParser wraps a token slice for parsing.
func NewParser(tokens []string) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// Read parses one complete form from the token stream.
func (p *Parser) Read() (runtime.Value, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, runtime.Throwf("Parse error: unexpected EOF")
	}

	switch tok {
	case "(":
		return p.readSeq("(", ")")
	case "[":
		return p.readVector()
	case "{":
		return p.readHashMap()
	case ")", "]", "}":
		return nil, runtime.Throwf("Parse error: unexpected '%s'", tok)
	case "'":
		p.next()
		return p.readWrapped(runtime.SymQuote)
	case "`":
		p.next()
		return p.readWrapped(runtime.SymQuasiquote)
	case "~":
		p.next()
		return p.readWrapped(runtime.SymUnquote)
	case "~@":
		p.next()
		return p.readWrapped(runtime.SymSpliceUnquote)
	case "^":
		p.next()
		metaForm, err := p.Read()
		if err != nil {
			return nil, err
		}
		objForm, err := p.Read()
		if err != nil {
			return nil, err
		}
		return runtime.NewList(runtime.SymWithMeta, objForm, metaForm), nil
	case "@":
		p.next()
		form, err := p.Read()
		if err != nil {
			return nil, err
		}
		return runtime.NewList(runtime.SymDeref, form), nil
	default:
		return p.readAtom(tok)
	}
}

func (p *Parser) readWrapped(head *runtime.SymValue) (runtime.Value, error) {
	form, err := p.Read()
	if err != nil {
		return nil, err
	}
	return runtime.NewList(head, form), nil
}

// readSeq reads open followed by forms until close into a list; lists use
// '(' and ')', and readVector reuses it with '[' and ']'.
func (p *Parser) readSeq(open, close string) (*runtime.ListValue, error) {
	p.next() // consume open
	var elems []runtime.Value
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, runtime.Throwf("Parse error: expected '%s', got EOF", close)
		}
		if tok == close {
			p.next()
			return runtime.NewList(elems...), nil
		}
		form, err := p.Read()
		if err != nil {
			return nil, err
		}
		elems = append(elems, form)
	}
}

func (p *Parser) readVector() (runtime.Value, error) {
	list, err := p.readSeq("[", "]")
	if err != nil {
		return nil, err
	}
	return runtime.NewVector(list.ToSlice()), nil
}

func (p *Parser) readHashMap() (runtime.Value, error) {
	p.next() // consume '{'
	var pairs []runtime.Value
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, runtime.Throwf("Parse error: expected '}', got EOF")
		}
		if tok == "}" {
			p.next()
			break
		}
		key, err := p.Read()
		if err != nil {
			return nil, err
		}
		switch key.(type) {
		case *runtime.StrValue, *runtime.SymValue, *runtime.KwValue:
		default:
			return nil, runtime.Throwf("Parse error: hash-map key must be a string, symbol or keyword, found '%s'", key.String())
		}
		valTok, ok := p.peek()
		if !ok || valTok == "}" {
			return nil, runtime.Throwf("Parse error: hash-map literal has an odd number of forms")
		}
		val, err := p.Read()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, key, val)
	}
	return runtime.NewHashMap(pairs...)
}

func (p *Parser) readAtom(tok string) (runtime.Value, error) {
	p.next()

	switch tok {
	case "true":
		return runtime.True, nil
	case "false":
		return runtime.False, nil
	case "nil":
		return runtime.Nil, nil
	}

	if tok[0] == '"' {
		return p.readString(tok)
	}

	if tok[0] == ':' {
		return runtime.Kw(tok[1:]), nil
	}

	if n, ok := parseInt(tok); ok {
		return runtime.Int(n), nil
	}

	return runtime.Sym(tok), nil
}

func parseInt(tok string) (int64, bool) {
	s := tok
	if s == "" {
		return 0, false
	}
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (p *Parser) readString(tok string) (runtime.Value, error) {
	if len(tok) < 2 || tok[len(tok)-1] != '"' || isEscapedClosingQuote(tok) {
		return nil, runtime.Throwf("Parse error: unterminated string")
	}
	inner := tok[1 : len(tok)-1]
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				sb.WriteByte('\n')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(inner[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return runtime.Str(sb.String()), nil
}

// isEscapedClosingQuote reports whether the token's apparent closing quote
// is actually escaped (making the string unterminated), e.g. `"abc\"`.
func isEscapedClosingQuote(tok string) bool {
	if len(tok) < 2 {
		return true
	}
	backslashes := 0
	for i := len(tok) - 2; i >= 0 && tok[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}
