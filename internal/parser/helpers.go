package parser

import (
	"fmt"

	"sigil/internal/diag"
	"sigil/internal/source"
	"sigil/internal/token"
)

// advance consumes and returns the current token, remembering its span for
// error positions.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect consumes the current token when it matches, otherwise reports one
// diagnostic and puts the parser in the failed state.
func (p *Parser) expect(kind token.Kind, code diag.Code, what string) (token.Token, bool) {
	tok := p.lx.Peek()
	if tok.Kind != kind {
		p.errf(code, tok.Span, "expected %s, found %s", what, describe(tok))
		return tok, false
	}
	return p.advance(), true
}

// errf reports an error and aborts the parse. One file produces at most one
// syntax error; everything after the failure point is unreliable.
func (p *Parser) errf(code diag.Code, span source.Span, format string, args ...any) {
	if p.failed {
		return
	}
	p.failed = true
	p.report(code, diag.SevError, span, fmt.Sprintf(format, args...))
}

// warnf reports a warning without stopping the parse.
func (p *Parser) warnf(code diag.Code, span source.Span, format string, args ...any) {
	p.report(code, diag.SevWarning, span, fmt.Sprintf(format, args...))
}

func (p *Parser) report(code diag.Code, sev diag.Severity, span source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.opts.Reporter.Report(code, sev, span, msg, nil)
}

// describe renders a token for error messages.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return fmt.Sprintf("identifier %q", tok.Text)
	case token.IntLit, token.FloatLit:
		return fmt.Sprintf("number %q", tok.Text)
	case token.StringLit:
		return "string literal"
	case token.Invalid:
		return fmt.Sprintf("%q", tok.Text)
	default:
		return fmt.Sprintf("'%s'", tok.Text)
	}
}
