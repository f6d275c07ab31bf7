package lexer

// The schema language is ASCII: identifiers are [A-Za-z_][A-Za-z0-9_]*,
// optionally dot-joined into qualified names.

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// isSpaceByte covers the blank bytes other than '\n', which is its own
// trivia kind. Stray carriage returns (classic-Mac files, CRs the loader
// did not pair with a newline) count as plain whitespace.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
