package parser

import (
	"strconv"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/source"
	"sigil/internal/token"
)

// parseStruct handles `struct name { member* }`. Members are field
// statements and inline constant statements; duplicate member names are
// rejected here, before resolution.
func (p *Parser) parseStruct() (ast.DeclID, bool) {
	kw := p.advance() // 'struct'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "struct name")
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "'{'"); !ok {
		return ast.NoDeclID, false
	}

	pkg, short, qualified := p.qualifyType(nameTok.Text)
	decl := ast.Decl{
		Kind:      ast.DeclStruct,
		Name:      p.b.Intern(short),
		Package:   p.b.Intern(pkg),
		Qualified: p.b.Intern(qualified),
		Span:      kw.Span.Cover(nameTok.Span),
		Comment:   kw.LeadingComment(),
	}

	seen := map[string]source.Span{}
	for !p.failed {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.RBrace:
			closeTok := p.advance()
			decl.Span = decl.Span.Cover(closeTok.Span)
			return p.b.NewDecl(decl), true
		case token.KwConst:
			p.parseConstStatement(&decl, seen)
		case token.KwStruct, token.KwEnum:
			p.errf(diag.SynNestedDeclNotAllowed, tok.Span,
				"'%s' declarations cannot nest inside a struct", tok.Text)
		case token.Ident:
			p.parseFieldStatement(&decl, seen)
		case token.EOF:
			p.errf(diag.SynUnexpectedToken, tok.Span,
				"expected member or '}', found end of file")
		default:
			p.errf(diag.SynUnexpectedToken, tok.Span,
				"expected member or '}', found %s", describe(tok))
		}
	}
	return ast.NoDeclID, false
}

// parseFieldStatement handles `type name dims (',' name dims)* ';'`. Each
// declarator becomes its own field; the leading comment attaches to the
// first one only.
func (p *Parser) parseFieldStatement(decl *ast.Decl, seen map[string]source.Span) {
	typeTok := p.advance()
	ref := p.makeTypeRef(typeTok)
	comment := typeTok.LeadingComment()

	for !p.failed {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "member name")
		if !ok {
			return
		}
		if !p.checkMemberName(nameTok, seen) {
			return
		}

		dims, ok := p.parseDims()
		if !ok {
			return
		}

		id := p.b.NewField(ast.Field{
			Name:    p.b.Intern(nameTok.Text),
			Type:    ref,
			Dims:    dims,
			Comment: comment,
			Span:    typeTok.Span.Cover(nameTok.Span),
		})
		decl.Fields = append(decl.Fields, id)
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

// makeTypeRef classifies a written type name as a primitive or an
// unresolved reference, qualifying the latter with the current package.
func (p *Parser) makeTypeRef(typeTok token.Token) ast.TypeRef {
	if prim, ok := ast.LookupPrimitive(typeTok.Text); ok {
		return ast.TypeRef{
			Prim: prim,
			Name: p.b.Intern(typeTok.Text),
			Span: typeTok.Span,
			Decl: ast.NoDeclID,
		}
	}
	switch typeTok.Text {
	case "int", "int8", "int16", "int32", "int64":
		p.warnf(diag.SynIntTypeSuspect, typeTok.Span,
			"'%s' is not a built-in type; the built-in integers are int8_t..int64_t",
			typeTok.Text)
	}
	_, _, qualified := p.qualifyType(typeTok.Text)
	return ast.TypeRef{
		Prim: ast.PrimNone,
		Name: p.b.Intern(qualified),
		Span: typeTok.Span,
		Decl: ast.NoDeclID,
	}
}

// parseDims consumes zero or more `[...]` specifiers. A number must be a
// positive integer constant; an identifier defers to the resolver.
func (p *Parser) parseDims() ([]ast.Dim, bool) {
	var dims []ast.Dim
	for p.at(token.LBracket) {
		open := p.advance()

		tok := p.lx.Peek()
		var dim ast.Dim
		switch tok.Kind {
		case token.IntLit:
			p.advance()
			n, err := strconv.ParseInt(tok.Text, 0, 64)
			if err != nil || n <= 0 {
				p.errf(diag.SynBadArraySize, tok.Span,
					"array size must be a positive integer, found %q", tok.Text)
				return nil, false
			}
			dim = ast.Dim{Mode: ast.DimConst, Text: tok.Text, Span: tok.Span, Value: n}
		case token.Ident:
			p.advance()
			if !isLegalMemberName(tok.Text) {
				p.errf(diag.SynBadArraySize, tok.Span,
					"array size field %q cannot be qualified", tok.Text)
				return nil, false
			}
			dim = ast.Dim{Mode: ast.DimDynamic, Text: tok.Text, Span: tok.Span}
		default:
			p.errf(diag.SynBadArraySize, tok.Span,
				"expected array size, found %s", describe(tok))
			return nil, false
		}

		closeTok, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "']'")
		if !ok {
			return nil, false
		}
		dim.Span = open.Span.Cover(closeTok.Span)
		dims = append(dims, dim)
	}
	return dims, true
}

// checkMemberName enforces the legacy member rules: undotted, and unique
// within the struct (fields and constants share one namespace).
func (p *Parser) checkMemberName(nameTok token.Token, seen map[string]source.Span) bool {
	if !isLegalMemberName(nameTok.Text) {
		p.errf(diag.SynInvalidMemberName, nameTok.Span,
			"member name %q cannot be qualified", nameTok.Text)
		return false
	}
	if _, dup := seen[nameTok.Text]; dup {
		p.errf(diag.SynDuplicateMember, nameTok.Span,
			"duplicate member %q", nameTok.Text)
		return false
	}
	seen[nameTok.Text] = nameTok.Span
	return true
}
