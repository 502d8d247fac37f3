package parser

func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexChar(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// isSpecial reports whether r terminates an unquoted attribute value.
func isSpecial(r rune) bool {
	switch r {
	case ',', '=', '+', '<', '>', '#', ';':
		return true
	}
	return false
}

func isQuotation(r rune) bool {
	return r == '"'
}

func isEscape(r rune) bool {
	return r == '\\'
}

func isKeyChar(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '-'
}

func isOIDChar(r rune) bool {
	return isDigit(r) || r == '.'
}
