package parser

import (
	"strconv"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/token"
)

// parseEnum handles `enum name { A, B = 5, C }`. Ordinals continue from the
// previous value plus one, starting at zero; assigning the same ordinal
// twice is an error.
func (p *Parser) parseEnum() (ast.DeclID, bool) {
	kw := p.advance() // 'enum'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "enum name")
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "'{'"); !ok {
		return ast.NoDeclID, false
	}

	pkg, short, qualified := p.qualifyType(nameTok.Text)
	decl := ast.Decl{
		Kind:      ast.DeclEnum,
		Name:      p.b.Intern(short),
		Package:   p.b.Intern(pkg),
		Qualified: p.b.Intern(qualified),
		Span:      kw.Span.Cover(nameTok.Span),
		Comment:   kw.LeadingComment(),
	}

	next := int64(0)
	seenName := map[string]bool{}
	seenOrdinal := map[int64]string{}

	for !p.failed {
		tok := p.lx.Peek()
		if tok.Kind == token.RBrace {
			closeTok := p.advance()
			decl.Span = decl.Span.Cover(closeTok.Span)
			return p.b.NewDecl(decl), true
		}

		valueTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "enum value name")
		if !ok {
			return ast.NoDeclID, false
		}
		if !isLegalMemberName(valueTok.Text) {
			p.errf(diag.SynInvalidMemberName, valueTok.Span,
				"enum value name %q cannot be qualified", valueTok.Text)
			return ast.NoDeclID, false
		}
		if seenName[valueTok.Text] {
			p.errf(diag.SynDuplicateMember, valueTok.Span,
				"duplicate enum value %q", valueTok.Text)
			return ast.NoDeclID, false
		}
		seenName[valueTok.Text] = true

		ordinal := next
		explicit := false
		if p.at(token.Assign) {
			p.advance()
			numTok, ok := p.expect(token.IntLit, diag.SynBadConstValue, "enum ordinal")
			if !ok {
				return ast.NoDeclID, false
			}
			n, err := strconv.ParseInt(numTok.Text, 0, 64)
			if err != nil {
				p.errf(diag.SynBadConstValue, numTok.Span,
					"cannot parse %q as an integer", numTok.Text)
				return ast.NoDeclID, false
			}
			ordinal = n
			explicit = true
		}
		if prev, dup := seenOrdinal[ordinal]; dup {
			p.errf(diag.SynDuplicateOrdinal, valueTok.Span,
				"ordinal %d already used by %q", ordinal, prev)
			return ast.NoDeclID, false
		}
		seenOrdinal[ordinal] = valueTok.Text
		next = ordinal + 1

		id := p.b.NewEnumValue(ast.EnumValue{
			Name:     p.b.Intern(valueTok.Text),
			Ordinal:  ordinal,
			Explicit: explicit,
			Comment:  valueTok.LeadingComment(),
			Span:     valueTok.Span,
		})
		decl.Values = append(decl.Values, id)

		switch sep := p.lx.Peek(); sep.Kind {
		case token.Comma:
			p.advance() // trailing comma before '}' is fine
		case token.RBrace:
			// handled at the top of the loop
		default:
			p.errf(diag.SynUnexpectedToken, sep.Span,
				"expected ',' or '}', found %s", describe(sep))
			return ast.NoDeclID, false
		}
	}
	return ast.NoDeclID, false
}
