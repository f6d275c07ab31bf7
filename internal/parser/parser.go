package parser

import (
	"strings"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/lexer"
	"sigil/internal/source"
	"sigil/internal/token"
)

type Options struct {
	Reporter diag.Reporter
	// PackagePrefix is prepended to the package of every non-primitive
	// type name, declarations and references alike.
	PackagePrefix string
}

type Result struct {
	File ast.FileID
	Ok   bool
}

// Parser holds the state for one file. Parsing is single-pass-abort: the
// first unrecoverable mismatch is reported and parsing stops, so a Result
// with Ok=false may carry a partial file.
type Parser struct {
	lx       *lexer.Lexer
	b        *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
	pkg      string // package from the last 'package' directive
	failed   bool
}

// ParseFile is the entry point for one file. It requires an already
// constructed lexer over the file's content.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	b *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		b:        b,
		file:     b.NewFile(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseDecls()
	p.b.File(p.file).Span = p.b.File(p.file).Span.Cover(p.lastSpan)
	return Result{
		File: p.file,
		Ok:   !p.failed,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// parseDecls is the top-level loop: package directives and type
// declarations until EOF or the first error.
func (p *Parser) parseDecls() {
	for !p.at(token.EOF) && !p.failed {
		switch p.lx.Peek().Kind {
		case token.KwPackage:
			p.parsePackageDirective()
		case token.KwStruct:
			if id, ok := p.parseStruct(); ok {
				p.b.PushDecl(p.file, id)
			}
		case token.KwEnum:
			if id, ok := p.parseEnum(); ok {
				p.b.PushDecl(p.file, id)
			}
		default:
			tok := p.lx.Peek()
			p.errf(diag.SynUnexpectedTopLevel, tok.Span,
				"expected 'package', 'struct' or 'enum', found %s", describe(tok))
		}
	}
}

// parsePackageDirective handles `package a.b.c;`. The directive sets the
// namespace for the declarations that follow; repeating it (in this file or
// another) reopens the same package.
func (p *Parser) parsePackageDirective() {
	p.advance() // 'package'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "package name")
	if !ok {
		return
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';'"); !ok {
		return
	}
	p.pkg = nameTok.Text
}

// qualifyType splits a written type name into package, short name, and
// qualified name, applying the current package directive (for unqualified
// names) and the package prefix (for every non-primitive), the same way the
// declarations themselves are qualified.
func (p *Parser) qualifyType(raw string) (pkg, short, qualified string) {
	if i := strings.LastIndexByte(raw, '.'); i >= 0 {
		pkg, short = raw[:i], raw[i+1:]
	} else {
		short = raw
		pkg = p.pkg
	}

	if p.opts.PackagePrefix != "" {
		if pkg != "" {
			pkg = p.opts.PackagePrefix + "." + pkg
		} else {
			pkg = p.opts.PackagePrefix
		}
	}

	if pkg == "" {
		return "", short, short
	}
	return pkg, short, pkg + "." + short
}

// isLegalMemberName mirrors the declared-name rule: a single undotted
// identifier starting with a letter or underscore.
func isLegalMemberName(s string) bool {
	return s != "" && !strings.ContainsRune(s, '.')
}
