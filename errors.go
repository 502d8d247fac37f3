package rfc2253

import "github.com/KimNorgaard/go-rfc2253/errors"

// ParseError describes why and where a distinguished name was rejected.
type ParseError = errors.ParseError

// Reason identifies the cause of a ParseError.
type Reason = errors.Reason

// ErrInvalidDN matches every error returned for malformed input.
var ErrInvalidDN = errors.ErrInvalidDN

const (
	ReasonMalformedSeparator   = errors.ReasonMalformedSeparator
	ReasonMissingEquals        = errors.ReasonMissingEquals
	ReasonInvalidAttributeType = errors.ReasonInvalidAttributeType
	ReasonUnescapedQuote       = errors.ReasonUnescapedQuote
	ReasonUnterminatedQuote    = errors.ReasonUnterminatedQuote
	ReasonInvalidHexString     = errors.ReasonInvalidHexString
	ReasonInvalidEscape        = errors.ReasonInvalidEscape
	ReasonInvalidHexPair       = errors.ReasonInvalidHexPair
	ReasonEmptyValue           = errors.ReasonEmptyValue
	ReasonInputTooLong         = errors.ReasonInputTooLong
)
