package rfc2253

import "fmt"

type options struct {
	maxLength         int
	rejectEmptyValues bool
}

// Option configures a single parse call.
type Option func(*options) error

// MaxLength returns an Option that rejects inputs longer than n runes
// before any parsing is done.
//
// The length n must be a positive integer.
func MaxLength(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("rfc2253: max length must be a positive integer")
		}
		o.maxLength = n
		return nil
	}
}

// RejectEmptyValues returns an Option that makes an empty attribute value,
// such as the one in "CN=,O=Example", a parse error. By default empty
// values are accepted and stored as "".
func RejectEmptyValues() Option {
	return func(o *options) error {
		o.rejectEmptyValues = true
		return nil
	}
}
