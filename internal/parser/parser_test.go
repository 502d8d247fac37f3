package parser_test

import (
	"testing"

	"github.com/KimNorgaard/go-rfc2253/errors"
	"github.com/KimNorgaard/go-rfc2253/internal/parser"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) (map[string]string, error) {
	t.Helper()
	p := parser.New([]rune(input))
	return p.ParseAttributes()
}

func TestParseAttributes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{"empty input", "", map[string]string{}},
		{"single attribute", "C=DE", map[string]string{"C": "DE"}},
		{"single letter type", "C=x", map[string]string{"C": "x"}},
		{"keychar type with digits and dash", "x-Attr2=v", map[string]string{"x-Attr2": "v"}},
		{"oid type", "2.5.4.3=Hans", map[string]string{"2.5.4.3": "Hans"}},
		{"comma separated", "C=DE,L=Berlin,ST=Berlin", map[string]string{"C": "DE", "L": "Berlin", "ST": "Berlin"}},
		{"plus separated", "C=DE,L=Berlin+ST=Berlin", map[string]string{"C": "DE", "L": "Berlin", "ST": "Berlin"}},
		{"last value wins", "CN=first,CN=second", map[string]string{"CN": "second"}},
		{"spaces kept in value", "CN=Hans Tester", map[string]string{"CN": "Hans Tester"}},
		{"empty value at end", "CN=", map[string]string{"CN": ""}},
		{"empty value before separator", "CN=,O=x", map[string]string{"CN": "", "O": "x"}},
		{"dangling separator", "CN=a,", map[string]string{"CN": "a"}},
		{"quoted", `CN="Nyan Cat"`, map[string]string{"CN": "Nyan Cat"}},
		{"quoted specials", `CN="a,b=c+d;e<f>g#h"`, map[string]string{"CN": "a,b=c+d;e<f>g#h"}},
		{"quoted empty", `CN=""`, map[string]string{"CN": ""}},
		{"quoted escape", `CN="a\"b"`, map[string]string{"CN": `a"b`}},
		{"escaped quote", `CN=Nyan\"Cat\"`, map[string]string{"CN": `Nyan"Cat"`}},
		{"escaped equals", `CN=Nyan\=Cat`, map[string]string{"CN": "Nyan=Cat"}},
		{"escaped backslash", `CN=Nyan\\Cat`, map[string]string{"CN": `Nyan\Cat`}},
		{"escaped comma", `CN=Tester\, Hans,O=x`, map[string]string{"CN": "Tester, Hans", "O": "x"}},
		{"hex escapes", `CN=Nyan\21Cat\3F`, map[string]string{"CN": "Nyan!Cat?"}},
		{"lowercase hex escape", `CN=\3f`, map[string]string{"CN": "?"}},
		{"hex string", "CN=#4E59414E213F", map[string]string{"CN": "NYAN!?"}},
		{"empty hex string", "CN=#", map[string]string{"CN": ""}},
		{"hex pair is a code point", `CN=\E9`, map[string]string{"CN": "\u00e9"}},
		{"multibyte passthrough", "CN=Jürgen,L=東京", map[string]string{"CN": "Jürgen", "L": "東京"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attrs, err := parse(t, tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, attrs)
		})
	}
}

func TestParseAttributes_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		reason errors.Reason
		offset int
	}{
		{"bare quote in simple value", `CN=Nyan"Cat`, errors.ReasonUnescapedQuote, 7},
		{"unterminated quote", `CN="NyanCat`, errors.ReasonUnterminatedQuote, 11},
		{"text after closing quote", `CN="Nyan"Cat`, errors.ReasonMalformedSeparator, 9},
		{"odd hex string", "CN=#abc", errors.ReasonInvalidHexPair, 6},
		{"stray rune in hex string", "CN=#4EZZ", errors.ReasonInvalidHexString, 6},
		{"hex string followed by separator", "CN=#4E,O=x", errors.ReasonInvalidHexString, 6},
		{"second digit of hex pair", "CN=#4Z", errors.ReasonInvalidHexPair, 4},
		{"missing equals at end", "CN", errors.ReasonMissingEquals, 2},
		{"missing equals", "CN:x", errors.ReasonMissingEquals, 2},
		{"type starts with dash", "-CN=x", errors.ReasonInvalidAttributeType, 0},
		{"type after separator", "CN=x,=y", errors.ReasonInvalidAttributeType, 5},
		{"leading space", " CN=x", errors.ReasonInvalidAttributeType, 0},
		{"non-ascii type", "ÄB=x", errors.ReasonInvalidAttributeType, 0},
		{"semicolon separator", "CN=a;O=b", errors.ReasonMalformedSeparator, 4},
		{"equals in value", "CN=a=b", errors.ReasonMalformedSeparator, 4},
		{"invalid escape", `CN=a\q`, errors.ReasonInvalidEscape, 4},
		{"escape at end", `CN=a\`, errors.ReasonInvalidEscape, 4},
		{"escape at end of quoted", `CN="a\`, errors.ReasonInvalidEscape, 5},
		{"short hex escape", `CN=a\4`, errors.ReasonInvalidHexPair, 5},
		{"bad hex escape", `CN=Nyan\4Z`, errors.ReasonInvalidHexPair, 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attrs, err := parse(t, tc.input)
			require.Nil(t, attrs)

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tc.reason, perr.Reason, "reason: %s", perr.Reason)
			require.Equal(t, tc.offset, perr.Offset)
		})
	}
}

func TestParseAttributes_RejectEmptyValues(t *testing.T) {
	testCases := []struct {
		input  string
		offset int
	}{
		{"CN=", 3},
		{"CN=,O=x", 3},
		{`CN=""`, 3},
		{"O=x+CN=#", 7},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			p := parser.New([]rune(tc.input))
			p.RejectEmptyValues = true
			_, err := p.ParseAttributes()

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, errors.ReasonEmptyValue, perr.Reason)
			require.Equal(t, tc.offset, perr.Offset)
		})
	}

	t.Run("non-empty values pass", func(t *testing.T) {
		p := parser.New([]rune("CN=x,O=y"))
		p.RejectEmptyValues = true
		attrs, err := p.ParseAttributes()
		require.NoError(t, err)
		require.Equal(t, map[string]string{"CN": "x", "O": "y"}, attrs)
	})
}
