package ast

import (
	"sigil/internal/source"
)

// DeclKind discriminates the type-declaration variants.
type DeclKind uint8

const (
	DeclStruct DeclKind = iota + 1
	DeclEnum
)

func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	}
	return "decl"
}

// Decl is one type declaration. The package owns it; fields, constants and
// enum values are arena handles owned by the declaration. After resolution
// nothing here mutates except Hash.
type Decl struct {
	Kind      DeclKind
	Name      source.StringID // unqualified, e.g. "point_t"
	Package   source.StringID // dotted package, e.g. "geometry" (may be empty)
	Qualified source.StringID // "geometry.point_t", or Name when no package
	Span      source.Span
	Comment   string

	// struct members
	Fields []FieldID
	Consts []ConstID

	// enum members
	Values []EnumValueID

	// Structural fingerprint, attached after resolution.
	Hash uint64
}

// TypeRef names a field's type. It starts as a primitive tag or an
// unresolved name and resolution is the single state transition to a
// declaration handle; it is never reversed. The handle is non-owning: many
// fields may reference one declaration.
type TypeRef struct {
	Prim PrimKind        // set for primitive types; PrimNone otherwise
	Name source.StringID // type name as written (qualified at parse time)
	Span source.Span
	Decl DeclID // resolved declaration; NoDeclID until the resolver binds it
}

// IsPrimitive reports whether the reference is a built-in type.
func (r TypeRef) IsPrimitive() bool { return r.Prim != PrimNone }

// IsResolved reports whether the reference has been bound.
func (r TypeRef) IsResolved() bool { return r.Prim != PrimNone || r.Decl.IsValid() }

// DimMode distinguishes compile-time from runtime-sized array dimensions.
// The mode participates in the structural fingerprint, so the constants
// are frozen: changing them breaks wire compatibility.
type DimMode uint8

const (
	DimConst   DimMode = 0
	DimDynamic DimMode = 1
)

// Dim is one array-dimension specifier.
type Dim struct {
	Mode DimMode
	// Text is the specifier as written: a decimal constant or the name of
	// a prior field (or inline constant) in the same struct.
	Text string
	Span source.Span
	// Value is the size for constant dimensions (filled for literals at
	// parse time, for const references at resolution time).
	Value int64
	// FieldRef binds dynamic dimensions to the sizing field.
	FieldRef FieldID
}

// Field is one struct member.
type Field struct {
	Name    source.StringID
	Type    TypeRef
	Dims    []Dim
	Comment string
	Span    source.Span
}

// IsFixedSize reports whether every dimension is a compile-time constant
// (a scalar counts as fixed). Only fixed fields create hard containment
// edges for the recursion check.
func (f *Field) IsFixedSize() bool {
	for i := range f.Dims {
		if f.Dims[i].Mode == DimDynamic {
			return false
		}
	}
	return true
}

// Const is an inline struct constant.
type Const struct {
	Type    PrimKind
	Name    source.StringID
	Value   string // literal as written
	Comment string
	Span    source.Span
}

// EnumValue is one enum member with its resolved ordinal.
type EnumValue struct {
	Name     source.StringID
	Ordinal  int64
	Explicit bool // ordinal was written in the source
	Comment  string
	Span     source.Span
}
