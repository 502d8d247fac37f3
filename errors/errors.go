package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidDN is matched by every ParseError. Callers that only care
// whether a DN was accepted can test for it with errors.Is.
var ErrInvalidDN = errors.New("rfc2253: invalid distinguished name")

// Reason identifies why a distinguished name was rejected.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonMalformedSeparator
	ReasonMissingEquals
	ReasonInvalidAttributeType
	ReasonUnescapedQuote
	ReasonUnterminatedQuote
	ReasonInvalidHexString
	ReasonInvalidEscape
	ReasonInvalidHexPair
	ReasonEmptyValue
	ReasonInputTooLong
)

var reasonText = map[Reason]string{
	ReasonUnknown:              "unknown error",
	ReasonMalformedSeparator:   "expected ',' or '+' between attributes",
	ReasonMissingEquals:        "expected '=' after attribute type",
	ReasonInvalidAttributeType: "attribute type must start with a letter or digit",
	ReasonUnescapedQuote:       "unescaped '\"' in attribute value",
	ReasonUnterminatedQuote:    "unterminated quoted attribute value",
	ReasonInvalidHexString:     "invalid character in hex string",
	ReasonInvalidEscape:        "invalid escape sequence",
	ReasonInvalidHexPair:       "invalid hex pair",
	ReasonEmptyValue:           "empty attribute value",
	ReasonInputTooLong:         "input exceeds maximum length",
}

var reasonNames = map[Reason]string{
	ReasonUnknown:              "unknown",
	ReasonMalformedSeparator:   "malformed-separator",
	ReasonMissingEquals:        "missing-equals",
	ReasonInvalidAttributeType: "invalid-attribute-type",
	ReasonUnescapedQuote:       "unescaped-quote",
	ReasonUnterminatedQuote:    "unterminated-quote",
	ReasonInvalidHexString:     "invalid-hex-string",
	ReasonInvalidEscape:        "invalid-escape",
	ReasonInvalidHexPair:       "invalid-hex-pair",
	ReasonEmptyValue:           "empty-value",
	ReasonInputTooLong:         "input-too-long",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// ParseError represents the first error that occurred during parsing.
// Offset counts runes, not bytes.
type ParseError struct {
	Reason Reason
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rfc2253: %s at offset %d", e.Reason, e.Offset)
}

// Is reports whether target is ErrInvalidDN.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidDN
}

// MarshalText encodes r as a short kebab-case identifier such as
// "unterminated-quote".
func (r Reason) MarshalText() ([]byte, error) {
	name, ok := reasonNames[r]
	if !ok {
		return nil, fmt.Errorf("rfc2253: unknown reason %d", int(r))
	}
	return []byte(name), nil
}

// UnmarshalText is the inverse of MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	for reason, name := range reasonNames {
		if name == string(text) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("rfc2253: unknown reason %q", text)
}
