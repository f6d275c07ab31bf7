package resolver

import (
	"strings"

	"sigil/internal/ast"
	"sigil/internal/diag"
)

// Fixed-size containment must be acyclic: a struct that contains itself
// through scalar or constant-sized array fields would have infinite size.
// Runtime-sized dimensions break the edge, so dynamic cycles (trees, linked
// structures) are fine.

const (
	colorWhite uint8 = iota
	colorGrey
	colorBlack
)

// checkRecursion runs a DFS over the fixed-containment edges of every
// struct (pass 3). Each cycle is reported once, at the declaration that
// closes it.
func (r *resolver) checkRecursion() {
	color := make(map[ast.DeclID]uint8, len(r.unit.Decls))
	var path []ast.DeclID

	for _, did := range r.unit.Decls {
		if r.b.Decl(did).Kind == ast.DeclStruct && color[did] == colorWhite {
			r.visit(did, color, &path)
		}
	}
}

func (r *resolver) visit(did ast.DeclID, color map[ast.DeclID]uint8, path *[]ast.DeclID) {
	color[did] = colorGrey
	*path = append(*path, did)

	d := r.b.Decl(did)
	for _, fid := range d.Fields {
		f := r.b.Field(fid)
		if f.Type.IsPrimitive() || !f.Type.Decl.IsValid() || !f.IsFixedSize() {
			continue
		}
		next := f.Type.Decl
		if r.b.Decl(next).Kind != ast.DeclStruct {
			continue
		}
		switch color[next] {
		case colorWhite:
			r.visit(next, color, path)
		case colorGrey:
			r.errf(diag.ResIllegalRecursion, f.Span,
				"fixed-size recursion: %s", r.cycleString(*path, next))
		}
	}

	*path = (*path)[:len(*path)-1]
	color[did] = colorBlack
}

// cycleString renders the cycle portion of the DFS path, e.g.
// "a.node_t -> a.leaf_t -> a.node_t".
func (r *resolver) cycleString(path []ast.DeclID, closing ast.DeclID) string {
	start := 0
	for i, did := range path {
		if did == closing {
			start = i
			break
		}
	}
	var sb strings.Builder
	for _, did := range path[start:] {
		sb.WriteString(r.b.Lookup(r.b.Decl(did).Qualified))
		sb.WriteString(" -> ")
	}
	sb.WriteString(r.b.Lookup(r.b.Decl(closing).Qualified))
	return sb.String()
}
