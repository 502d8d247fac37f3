package rfc2253

import (
	"fmt"

	"github.com/KimNorgaard/go-rfc2253/errors"
	"github.com/KimNorgaard/go-rfc2253/internal/parser"
)

// DistinguishedName is the parsed form of a DN string.
//
// Attributes maps each attribute type to its decoded value. Types are
// compared exactly, so "CN" and "cn" are different keys. When a type
// occurs more than once the last value wins.
type DistinguishedName struct {
	Attributes map[string]string
}

// New returns an empty DistinguishedName.
func New() *DistinguishedName {
	return &DistinguishedName{Attributes: map[string]string{}}
}

// FromCommonName returns a DistinguishedName whose only attribute is the
// common name.
func FromCommonName(name string) *DistinguishedName {
	return &DistinguishedName{Attributes: map[string]string{"CN": name}}
}

// Get returns the value stored for attrType.
func (dn *DistinguishedName) Get(attrType string) (string, bool) {
	v, ok := dn.Attributes[attrType]
	return v, ok
}

// CommonName returns the value of the CN attribute.
func (dn *DistinguishedName) CommonName() (string, bool) {
	return dn.Get("CN")
}

// Email returns the value of the emailAddress attribute.
func (dn *DistinguishedName) Email() (string, bool) {
	return dn.Get("emailAddress")
}

// Len returns the number of distinct attribute types.
func (dn *DistinguishedName) Len() int {
	return len(dn.Attributes)
}

// Parse parses a DN in RFC 2253 string representation.
//
// The input is decoded into runes before parsing, so multi-byte
// characters are handled as single units. Invalid UTF-8 sequences are
// decoded as utf8.RuneError.
func Parse(input string, opts ...Option) (*DistinguishedName, error) {
	return ParseRunes([]rune(input), opts...)
}

// ParseRunes is like Parse but operates on already decoded runes.
func ParseRunes(input []rune, opts ...Option) (*DistinguishedName, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	if o.maxLength > 0 && len(input) > o.maxLength {
		return nil, &errors.ParseError{Reason: errors.ReasonInputTooLong, Offset: o.maxLength}
	}

	p := parser.New(input)
	p.RejectEmptyValues = o.rejectEmptyValues

	attrs, err := p.ParseAttributes()
	if err != nil {
		return nil, err
	}
	return &DistinguishedName{Attributes: attrs}, nil
}

// MustParse is like Parse but panics if the input cannot be parsed.
func MustParse(input string) *DistinguishedName {
	dn, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("rfc2253: MustParse(%q): %v", input, err))
	}
	return dn
}
