package parser

import (
	"strconv"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/source"
	"sigil/internal/token"
)

// parseConstStatement handles
// `const type name = value (',' name = value)* ';'` inside a struct body.
// Constants share the member namespace with fields and may later size
// constant array dimensions.
func (p *Parser) parseConstStatement(decl *ast.Decl, seen map[string]source.Span) {
	kw := p.advance() // 'const'
	comment := kw.LeadingComment()

	typeTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "constant type")
	if !ok {
		return
	}
	prim, isPrim := ast.LookupPrimitive(typeTok.Text)
	if !isPrim || !prim.IsConstable() {
		p.errf(diag.SynBadConstType, typeTok.Span,
			"constants must have an integer or floating-point type, found %q", typeTok.Text)
		return
	}

	for !p.failed {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "constant name")
		if !ok {
			return
		}
		if !p.checkMemberName(nameTok, seen) {
			return
		}
		if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "'='"); !ok {
			return
		}

		valTok := p.lx.Peek()
		if valTok.Kind != token.IntLit && valTok.Kind != token.FloatLit {
			p.errf(diag.SynBadConstValue, valTok.Span,
				"expected constant value, found %s", describe(valTok))
			return
		}
		p.advance()
		if !p.checkConstValue(prim, valTok) {
			return
		}

		id := p.b.NewConst(ast.Const{
			Type:    prim,
			Name:    p.b.Intern(nameTok.Text),
			Value:   valTok.Text,
			Comment: comment,
			Span:    kw.Span.Cover(valTok.Span),
		})
		decl.Consts = append(decl.Consts, id)
		comment = ""

		switch next := p.lx.Peek(); next.Kind {
		case token.Comma:
			p.advance()
		case token.Semicolon:
			p.advance()
			return
		default:
			p.errf(diag.SynExpectSemicolon, next.Span,
				"expected ',' or ';', found %s", describe(next))
			return
		}
	}
}

// checkConstValue validates the literal against the constant's type:
// integer types take integer literals within their range, floating types
// take any numeric literal.
func (p *Parser) checkConstValue(prim ast.PrimKind, valTok token.Token) bool {
	if lo, hi, ok := prim.IntBounds(); ok {
		if valTok.Kind != token.IntLit {
			p.errf(diag.SynBadConstValue, valTok.Span,
				"%s constant requires an integer value, found %q", prim, valTok.Text)
			return false
		}
		n, err := strconv.ParseInt(valTok.Text, 0, 64)
		if err != nil {
			p.errf(diag.SynBadConstValue, valTok.Span,
				"cannot parse %q as an integer", valTok.Text)
			return false
		}
		if n < lo || n > hi {
			p.errf(diag.SynConstOutOfRange, valTok.Span,
				"value %d out of range for %s [%d, %d]", n, prim, lo, hi)
			return false
		}
		return true
	}

	// Floating constants accept integer literals too (hex and friends go
	// through the integer parse since ParseFloat rejects bare hex).
	var err error
	if valTok.Kind == token.IntLit {
		_, err = strconv.ParseInt(valTok.Text, 0, 64)
	} else {
		_, err = strconv.ParseFloat(valTok.Text, 64)
	}
	if err != nil {
		p.errf(diag.SynBadConstValue, valTok.Span,
			"cannot parse %q as a number", valTok.Text)
		return false
	}
	return true
}
