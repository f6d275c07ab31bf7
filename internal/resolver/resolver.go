package resolver

import (
	"fmt"
	"strconv"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/source"
)

// Unit is the resolved compilation unit: every declaration of every input
// file, bound and indexed. Decls keeps first-declaration order so dumps and
// fingerprints come out deterministic.
type Unit struct {
	Builder *ast.Builder
	Decls   []ast.DeclID
	ByName  map[string]ast.DeclID // qualified name -> declaration
}

// Lookup finds a declaration by its qualified name.
func (u *Unit) Lookup(qualified string) (ast.DeclID, bool) {
	id, ok := u.ByName[qualified]
	return id, ok
}

type resolver struct {
	b    *ast.Builder
	unit *Unit
	rep  diag.Reporter
	bad  bool
}

// Resolve binds every type reference and array dimension of the given files
// and checks for illegal fixed-size recursion. It reports everything it
// finds rather than stopping at the first problem; ok is false when any
// error was reported. Runs single-threaded over the merged builder.
func Resolve(b *ast.Builder, files []ast.FileID, rep diag.Reporter) (*Unit, bool) {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	r := resolver{
		b: b,
		unit: &Unit{
			Builder: b,
			ByName:  map[string]ast.DeclID{},
		},
		rep: rep,
	}

	r.collect(files)
	r.bindAll()
	r.checkRecursion()
	return r.unit, !r.bad
}

func (r *resolver) errf(code diag.Code, span source.Span, format string, args ...any) {
	r.bad = true
	r.rep.Report(code, diag.SevError, span, fmt.Sprintf(format, args...), nil)
}

func (r *resolver) errNoted(code diag.Code, span source.Span, msg string, notes []diag.Note) {
	r.bad = true
	r.rep.Report(code, diag.SevError, span, msg, notes)
}

// collect builds the global symbol table (pass 1). Later duplicates lose;
// the first declaration stays authoritative so downstream passes still have
// something to bind against.
func (r *resolver) collect(files []ast.FileID) {
	for _, fid := range files {
		for _, did := range r.b.File(fid).Decls {
			d := r.b.Decl(did)
			name := r.b.Lookup(d.Qualified)
			if prev, dup := r.unit.ByName[name]; dup {
				r.errNoted(diag.ResDuplicateType, d.Span,
					fmt.Sprintf("type %q is already declared", name),
					[]diag.Note{{Span: r.b.Decl(prev).Span, Msg: "previous declaration here"}})
				continue
			}
			r.unit.ByName[name] = did
			r.unit.Decls = append(r.unit.Decls, did)
		}
	}
}

// bindAll resolves field types and array dimensions (pass 2).
func (r *resolver) bindAll() {
	for _, did := range r.unit.Decls {
		d := r.b.Decl(did)
		if d.Kind != ast.DeclStruct {
			continue
		}
		for i, fid := range d.Fields {
			f := r.b.Field(fid)
			r.bindType(d, f)
			r.bindDims(d, f, i)
		}
	}
}

// bindType binds one field's type reference. The parser already qualified
// unqualified names with the current package, so the exact qualified name is
// tried first; a bare declaration (no package anywhere) matches by short
// name as a fallback.
func (r *resolver) bindType(owner *ast.Decl, f *ast.Field) {
	if f.Type.IsPrimitive() {
		return
	}
	name := r.b.Lookup(f.Type.Name)
	target, ok := r.unit.ByName[name]
	if !ok {
		if short, found := shortName(name); found {
			target, ok = r.unit.ByName[short]
		}
	}
	if !ok {
		r.errf(diag.ResUnknownType, f.Type.Span,
			"unknown type %q referenced by %q",
			name, r.b.Lookup(owner.Qualified))
		return
	}
	f.Type.Decl = target
}

func shortName(qualified string) (string, bool) {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[i+1:], true
		}
	}
	return qualified, false
}

// bindDims resolves one field's array dimensions (fieldIdx is the field's
// position inside its struct). An identifier dimension names either an
// inline integer constant of the struct, which freezes it into a constant
// dimension, or an integral scalar field declared earlier, which stays a
// runtime dimension bound to that field.
func (r *resolver) bindDims(owner *ast.Decl, f *ast.Field, fieldIdx int) {
	for di := range f.Dims {
		dim := &f.Dims[di]
		if dim.Mode == ast.DimConst {
			continue
		}

		if cid, ok := r.findConst(owner, dim.Text); ok {
			c := r.b.Const(cid)
			if !c.Type.IsIntegral() {
				r.errf(diag.ResBadDimensionType, dim.Span,
					"constant %q cannot size an array: %s is not an integer type",
					dim.Text, c.Type)
				continue
			}
			n, err := strconv.ParseInt(c.Value, 0, 64)
			if err != nil || n <= 0 {
				r.errf(diag.ResBadDimensionType, dim.Span,
					"constant %q does not name a positive array size", dim.Text)
				continue
			}
			dim.Mode = ast.DimConst
			dim.Value = n
			continue
		}

		sizer, ok := r.findEarlierField(owner, dim.Text, fieldIdx)
		if !ok {
			r.errf(diag.ResUnknownDimensionField, dim.Span,
				"array size %q does not name an earlier member of %q",
				dim.Text, r.b.Lookup(owner.Qualified))
			continue
		}
		sf := r.b.Field(sizer)
		if !sf.Type.IsPrimitive() || !sf.Type.Prim.IsIntegral() || len(sf.Dims) > 0 {
			r.errf(diag.ResBadDimensionType, dim.Span,
				"array size field %q must be a scalar integer", dim.Text)
			continue
		}
		dim.FieldRef = sizer
	}
}

func (r *resolver) findConst(owner *ast.Decl, name string) (ast.ConstID, bool) {
	for _, cid := range owner.Consts {
		if r.b.Lookup(r.b.Const(cid).Name) == name {
			return cid, true
		}
	}
	return ast.NoConstID, false
}

// findEarlierField looks the name up among fields declared strictly before
// position limit. A later field cannot size an earlier array: decoders read
// members in order.
func (r *resolver) findEarlierField(owner *ast.Decl, name string, limit int) (ast.FieldID, bool) {
	for i := 0; i < limit; i++ {
		fid := owner.Fields[i]
		if r.b.Lookup(r.b.Field(fid).Name) == name {
			return fid, true
		}
	}
	return ast.NoFieldID, false
}
