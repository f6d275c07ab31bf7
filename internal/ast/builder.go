package ast

import (
	"sigil/internal/source"
)

// Hints sizes the arenas up front for large compilation units.
type Hints struct {
	Files  uint
	Decls  uint
	Fields uint
}

// Builder owns the AST arenas and the string interner for one compilation
// unit. Per-file parsers can each use their own Builder; Absorb merges them
// into one unit before resolution.
type Builder struct {
	Files   *Arena[File]
	Decls   *Arena[Decl]
	Fields  *Arena[Field]
	Consts  *Arena[Const]
	Values  *Arena[EnumValue]
	Strings *source.Interner
}

// NewBuilder creates a Builder. A nil interner allocates a fresh one;
// passing a shared interner lets parallel parsers agree on StringIDs.
func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	if hints.Files == 0 {
		hints.Files = 4
	}
	if hints.Decls == 0 {
		hints.Decls = 16
	}
	if hints.Fields == 0 {
		hints.Fields = 64
	}
	return &Builder{
		Files:   NewArena[File](hints.Files),
		Decls:   NewArena[Decl](hints.Decls),
		Fields:  NewArena[Field](hints.Fields),
		Consts:  NewArena[Const](hints.Fields / 4),
		Values:  NewArena[EnumValue](hints.Fields / 4),
		Strings: interner,
	}
}

// NewFile allocates a file node.
func (b *Builder) NewFile(span source.Span) FileID {
	return FileID(b.Files.Allocate(File{Span: span}))
}

// NewDecl allocates a declaration node.
func (b *Builder) NewDecl(d Decl) DeclID {
	return DeclID(b.Decls.Allocate(d))
}

// NewField allocates a field node.
func (b *Builder) NewField(f Field) FieldID {
	return FieldID(b.Fields.Allocate(f))
}

// NewConst allocates an inline-constant node.
func (b *Builder) NewConst(c Const) ConstID {
	return ConstID(b.Consts.Allocate(c))
}

// NewEnumValue allocates an enum-value node.
func (b *Builder) NewEnumValue(v EnumValue) EnumValueID {
	return EnumValueID(b.Values.Allocate(v))
}

// PushDecl appends a declaration to a file in source order.
func (b *Builder) PushDecl(file FileID, decl DeclID) {
	f := b.File(file)
	f.Decls = append(f.Decls, decl)
}

// Typed arena accessors.

func (b *Builder) File(id FileID) *File { return b.Files.Get(uint32(id)) }
func (b *Builder) Decl(id DeclID) *Decl { return b.Decls.Get(uint32(id)) }
func (b *Builder) Field(id FieldID) *Field { return b.Fields.Get(uint32(id)) }
func (b *Builder) Const(id ConstID) *Const { return b.Consts.Get(uint32(id)) }
func (b *Builder) Value(id EnumValueID) *EnumValue { return b.Values.Get(uint32(id)) }

// Intern is a convenience shortcut for the builder's interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}

// Lookup is a convenience shortcut for the builder's interner.
func (b *Builder) Lookup(id source.StringID) string {
	return b.Strings.MustLookup(id)
}
