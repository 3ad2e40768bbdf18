package schema

import (
	"regexp"
	"strconv"
)

// maxNestingDepth bounds recursive descent so a pathological type string
// like "uint8[][][]...[]" fails with a ParseError instead of exhausting
// the goroutine stack.
const maxNestingDepth = 32

var (
	bytesRe = regexp.MustCompile(`^bytes([0-9]+)$`)
	fixedRe = regexp.MustCompile(`^(u?)fixed([0-9]+)x([0-9]+)$`)
	intRe   = regexp.MustCompile(`^(u?)int([0-9]+)$`)
)

// Parse parses a canonical ABI type string into a Type.
func Parse(s string) (Type, error) {
	if s == "" {
		return Type{}, &ParseError{Kind: ErrInvalidTypeString, TypeString: s, Msg: "empty type string"}
	}
	toks, err := lex(s)
	if err != nil {
		return Type{}, err
	}
	p := &parser{toks: toks, src: s}
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	if p.cur().kind != tokEOF {
		return Type{}, &ParseError{Kind: ErrInvalidTypeString, TypeString: s, Msg: "trailing data after type"}
	}
	return t, nil
}

type parser struct {
	toks  []token
	pos   int
	depth int
	src   string
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) advance() { p.pos++ }

func (p *parser) err(kind ErrKind, msg string) error {
	return &ParseError{Kind: kind, TypeString: p.src, Msg: msg}
}

func (p *parser) parseType() (Type, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return Type{}, p.err(ErrParameterOutOfRange, "type nesting exceeds maximum depth")
	}

	t, err := p.parseAtom()
	if err != nil {
		return Type{}, err
	}
	dims := 0
	for p.cur().kind == tokLBracket {
		dims++
		if p.depth+dims > maxNestingDepth {
			return Type{}, p.err(ErrParameterOutOfRange, "type nesting exceeds maximum depth")
		}
		p.advance()
		switch p.cur().kind {
		case tokNumber:
			n, convErr := strconv.Atoi(p.cur().text)
			if convErr != nil {
				return Type{}, p.err(ErrInvalidTypeString, "malformed array length")
			}
			p.advance()
			if p.cur().kind != tokRBracket {
				return Type{}, p.err(ErrInvalidTypeString, "expected ']'")
			}
			p.advance()
			t, err = NewArray(t, n)
			if err != nil {
				return Type{}, p.err(ErrParameterOutOfRange, err.Error())
			}
		case tokRBracket:
			p.advance()
			t = NewDynamicArray(t)
		default:
			return Type{}, p.err(ErrInvalidTypeString, "expected array length or ']'")
		}
	}
	return t, nil
}

func (p *parser) parseAtom() (Type, error) {
	switch p.cur().kind {
	case tokLParen:
		return p.parseTuple()
	case tokIdent:
		return p.parseElementary()
	default:
		return Type{}, p.err(ErrInvalidTypeString, "expected a type")
	}
}

func (p *parser) parseTuple() (Type, error) {
	p.advance() // consume '('
	var components []Type
	if p.cur().kind == tokRParen {
		p.advance()
		return NewTuple(components...), nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		components = append(components, t)
		switch p.cur().kind {
		case tokComma:
			p.advance()
		case tokRParen:
			p.advance()
			return NewTuple(components...), nil
		default:
			return Type{}, p.err(ErrInvalidTypeString, "expected ',' or ')'")
		}
	}
}

func (p *parser) parseElementary() (Type, error) {
	text := p.cur().text
	p.advance()

	switch text {
	case "address":
		return NewAddress(), nil
	case "bool":
		return NewBool(), nil
	case "string":
		return NewString(), nil
	case "bytes":
		return NewDynamicBytes(), nil
	}
	if m := bytesRe.FindStringSubmatch(text); m != nil {
		size, _ := strconv.Atoi(m[1])
		t, err := NewBytes(size)
		if err != nil {
			return Type{}, p.err(ErrParameterOutOfRange, err.Error())
		}
		return t, nil
	}
	if m := fixedRe.FindStringSubmatch(text); m != nil {
		signed := m[1] == ""
		bits, _ := strconv.Atoi(m[2])
		prec, _ := strconv.Atoi(m[3])
		t, err := NewFixed(signed, bits, prec)
		if err != nil {
			return Type{}, p.err(ErrParameterOutOfRange, err.Error())
		}
		return t, nil
	}
	if m := intRe.FindStringSubmatch(text); m != nil {
		signed := m[1] == ""
		bits, _ := strconv.Atoi(m[2])
		t, err := NewInteger(signed, bits)
		if err != nil {
			return Type{}, p.err(ErrParameterOutOfRange, err.Error())
		}
		return t, nil
	}
	return Type{}, p.err(ErrUnknownType, "unknown elementary type "+strconv.Quote(text))
}
