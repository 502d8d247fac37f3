/*
Package rfc2253 parses Distinguished Names written in the string
representation described by RFC 2253, as used by LDAP and X.500
directories, into a flat mapping of attribute types to values.

Example:

	dn, err := rfc2253.Parse("C=DE,CN=Hans Tester,O=ACME Inc.")
	if err != nil {
		// handle error
	}
	cn, _ := dn.CommonName() // "Hans Tester"

The parser supports the full value syntax of the RFC: plain values,
quoted values ("..."), hex strings (#4E59414E) and backslash escapes of
special characters (\,) or hex pairs (\21). Attribute types are either
keywords (CN, emailAddress, x-custom) or dotted OIDs (2.5.4.3).

Attributes separated by ',' and attributes joined into a multi-valued RDN
with '+' are merged into the same map; if a type occurs more than once the
last value wins. No ordering is preserved.

Every error returned for malformed input is a *ParseError carrying a Reason
and the rune offset at which parsing stopped. All of them match
ErrInvalidDN:

	if errors.Is(err, rfc2253.ErrInvalidDN) {
		// reject input
	}

Parsing is configured with functional options such as MaxLength and
RejectEmptyValues.
*/
package rfc2253
