package ast

import (
	"sigil/internal/source"
)

// File is the per-file AST root: the declarations in source order.
type File struct {
	Span  source.Span
	Decls []DeclID
}
