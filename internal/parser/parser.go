package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-rfc2253/errors"
	"github.com/KimNorgaard/go-rfc2253/internal/cursor"
)

// Parser holds the state of the parser.
type Parser struct {
	c *cursor.Cursor

	// RejectEmptyValues turns an empty attribute value into an error
	// instead of storing "".
	RejectEmptyValues bool
}

// New creates a new parser over input.
func New(input []rune) *Parser {
	return &Parser{c: cursor.New(input)}
}

// ParseAttributes consumes the whole input and returns the attributes it
// contains. A type that appears more than once keeps its last value.
func (p *Parser) ParseAttributes() (map[string]string, error) {
	attrs := make(map[string]string)

	for !p.c.AtEnd() {
		typ, value, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs[typ] = value

		r, ok := p.c.Peek()
		if !ok {
			break
		}
		if r != ',' && r != '+' {
			return nil, p.fail(errors.ReasonMalformedSeparator)
		}
		p.c.Advance()
	}

	return attrs, nil
}

// The contract for all parse functions is that they are entered with the
// cursor on the first rune of the construct, and they return with the
// cursor on the rune *after* it.

func (p *Parser) parseAttribute() (string, string, error) {
	typ, err := p.parseAttributeType()
	if err != nil {
		return "", "", err
	}

	if r, ok := p.c.Peek(); !ok || r != '=' {
		return "", "", p.fail(errors.ReasonMissingEquals)
	}
	p.c.Advance()

	start := p.c.Offset()
	value, err := p.parseString()
	if err != nil {
		return "", "", err
	}
	if value == "" && p.RejectEmptyValues {
		return "", "", failAt(errors.ReasonEmptyValue, start)
	}

	return typ, value, nil
}

func (p *Parser) parseAttributeType() (string, error) {
	r, ok := p.c.Peek()
	switch {
	case !ok:
		return "", p.fail(errors.ReasonInvalidAttributeType)
	case isAlpha(r):
		return p.readWhile(isKeyChar), nil
	case isDigit(r):
		return p.readWhile(isOIDChar), nil
	default:
		return "", p.fail(errors.ReasonInvalidAttributeType)
	}
}

func (p *Parser) readWhile(accept func(rune) bool) string {
	var buf strings.Builder
	for {
		r, ok := p.c.Peek()
		if !ok || !accept(r) {
			return buf.String()
		}
		buf.WriteRune(r)
		p.c.Advance()
	}
}

func (p *Parser) parseString() (string, error) {
	r, _ := p.c.Peek()
	switch r {
	case '"':
		return p.parseQuotedString()
	case '#':
		return p.parseHexString()
	default:
		return p.parseSimpleString()
	}
}

func (p *Parser) parseSimpleString() (string, error) {
	var buf strings.Builder
	for {
		r, ok := p.c.Peek()
		switch {
		case !ok, isSpecial(r):
			return buf.String(), nil
		case isQuotation(r):
			return "", p.fail(errors.ReasonUnescapedQuote)
		case isEscape(r):
			if err := p.parseEscapeSequence(&buf); err != nil {
				return "", err
			}
		default:
			buf.WriteRune(r)
			p.c.Advance()
		}
	}
}

func (p *Parser) parseQuotedString() (string, error) {
	if r, ok := p.c.Peek(); !ok || !isQuotation(r) {
		return "", p.fail(errors.ReasonUnterminatedQuote)
	}
	p.c.Advance() // consume opening quote

	var buf strings.Builder
loop:
	for {
		r, ok := p.c.Peek()
		switch {
		case !ok:
			return "", p.fail(errors.ReasonUnterminatedQuote)
		case isQuotation(r):
			break loop
		case isEscape(r):
			if err := p.parseEscapeSequence(&buf); err != nil {
				return "", err
			}
		default:
			buf.WriteRune(r)
			p.c.Advance()
		}
	}

	if r, ok := p.c.Peek(); !ok || !isQuotation(r) {
		return "", p.fail(errors.ReasonUnterminatedQuote)
	}
	p.c.Advance() // consume closing quote

	return buf.String(), nil
}

func (p *Parser) parseHexString() (string, error) {
	if r, ok := p.c.Peek(); !ok || r != '#' {
		return "", p.fail(errors.ReasonInvalidHexString)
	}
	p.c.Advance() // consume '#'

	var buf strings.Builder
	for {
		r, ok := p.c.Peek()
		if !ok {
			return buf.String(), nil
		}
		if !isHexChar(r) {
			return "", p.fail(errors.ReasonInvalidHexString)
		}
		decoded, err := p.parseHexPair()
		if err != nil {
			return "", err
		}
		buf.WriteRune(decoded)
	}
}

// parseEscapeSequence decodes a backslash escape and appends the result
// to buf.
func (p *Parser) parseEscapeSequence(buf *strings.Builder) error {
	start := p.c.Offset()
	if r, ok := p.c.Peek(); !ok || !isEscape(r) {
		return p.fail(errors.ReasonInvalidEscape)
	}
	p.c.Advance() // consume backslash

	r, ok := p.c.Peek()
	switch {
	case !ok:
		return failAt(errors.ReasonInvalidEscape, start)
	case isSpecial(r), isQuotation(r), isEscape(r):
		buf.WriteRune(r)
		p.c.Advance()
		return nil
	case isHexChar(r):
		decoded, err := p.parseHexPair()
		if err != nil {
			return err
		}
		buf.WriteRune(decoded)
		return nil
	default:
		return failAt(errors.ReasonInvalidEscape, start)
	}
}

// parseHexPair reads two runes and decodes them as one base-16 code
// point. Both runes are consumed before they are validated.
func (p *Parser) parseHexPair() (rune, error) {
	start := p.c.Offset()

	var digits [2]rune
	for i := range digits {
		r, ok := p.c.Peek()
		if !ok {
			return 0, failAt(errors.ReasonInvalidHexPair, start)
		}
		digits[i] = r
		p.c.Advance()
	}

	v, err := strconv.ParseUint(string(digits[:]), 16, 32)
	if err != nil {
		return 0, failAt(errors.ReasonInvalidHexPair, start)
	}
	decoded := rune(v)
	if !utf8.ValidRune(decoded) {
		return 0, failAt(errors.ReasonInvalidHexPair, start)
	}
	return decoded, nil
}

func (p *Parser) fail(reason errors.Reason) error {
	return failAt(reason, p.c.Offset())
}

func failAt(reason errors.Reason, offset int) error {
	return &errors.ParseError{Reason: reason, Offset: offset}
}
