package sax

import "unicode"

// Character classifier predicates (spec §4.1). These are deliberately
// permissive relative to the strict XML 1.0 Name production: implementations
// are told to prefer Unicode character classes over a hand-maintained code
// point table, and the reference parser this spec is modeled on is itself
// permissive about what counts as a name character.

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isQuoteChar(r rune) bool {
	return r == '"' || r == '\''
}

// isAttribEnd matches the characters that terminate an unquoted attribute
// value or a bare attribute name: '>' or any whitespace.
func isAttribEnd(r rune) bool {
	return r == '>' || isWhitespace(r)
}

// isNameStartChar follows the XML Name production's NameStartChar: letters,
// '_' and ':'. Combining marks and digits are not valid at the start of a
// name.
func isNameStartChar(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

// isNameBodyChar follows NameChar: everything NameStartChar allows, plus
// digits, '-', '.', and combining marks.
func isNameBodyChar(r rune) bool {
	if isNameStartChar(r) {
		return true
	}
	if r == '-' || r == '.' {
		return true
	}
	if unicode.IsDigit(r) {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

// isEntityStartChar matches the first character of a buffered entity name:
// either a name-start character, or '#' for a numeric character reference.
func isEntityStartChar(r rune) bool {
	return r == '#' || isNameStartChar(r)
}

// isEntityBodyChar matches subsequent characters of a buffered entity name.
func isEntityBodyChar(r rune) bool {
	return isNameBodyChar(r)
}
