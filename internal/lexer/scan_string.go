package lexer

import (
	"sigil/internal/token"
)

// scanString scans a double-quoted string literal. Escapes are kept verbatim
// in Token.Text (the exact source slice); only \" and \\ matter for finding
// the closing quote.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '"' {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\n' {
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
