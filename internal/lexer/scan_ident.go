package lexer

import (
	"sigil/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it against the keyword
// table. A '.' followed by an identifier start continues the same token, so
// qualified names ("geometry.point_t") and dotted package names arrive as
// one Ident. Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '.' {
			if _, b1, ok := lx.cursor.Peek2(); ok && isIdentStartByte(b1) {
				lx.cursor.Bump() // '.'
				lx.cursor.Bump() // first byte of the next segment
				continue
			}
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Keywords are never dotted, so the lookup stays cheap.
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
