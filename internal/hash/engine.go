// Package hash computes the 64-bit structural fingerprint every declared
// type carries on the wire. The algorithm is an interoperability contract:
// independent encoder and decoder implementations compare fingerprints at
// runtime, so every constant and mixing step here is frozen.
package hash

import (
	"fmt"
	"math/bits"
	"strconv"

	"sigil/internal/ast"
	"sigil/internal/resolver"
)

// Seed is the accumulator's starting value.
const Seed uint64 = 0x12345678

// Per-primitive type contributions. Published and frozen: changing any
// entry changes every fingerprint that transitively uses the primitive.
var primContribution = map[ast.PrimKind]uint64{
	ast.PrimInt8:    0x5f1897a8d1a4be11,
	ast.PrimInt16:   0x9c2b41e6f0da3c72,
	ast.PrimInt32:   0x31c8a0f47be2d9a3,
	ast.PrimInt64:   0xe47d5b93218c6f04,
	ast.PrimByte:    0x7a92c3e81d50b4f5,
	ast.PrimFloat:   0x083fd6a25c97e1b6,
	ast.PrimDouble:  0xb6541f09ea38d2c7,
	ast.PrimBoolean: 0x2de9803bf7164a58,
	ast.PrimString:  0xc1076d5a48fb39e9,
}

// ComputeAll fingerprints every declaration of the unit, in unit order, and
// stores the result on each declaration. Declaration order across files
// never influences a fingerprint: each one depends only on the type's own
// structure and the structure of the types it references.
func ComputeAll(u *resolver.Unit) {
	e := engine{u: u}
	for _, did := range u.Decls {
		u.Builder.Decl(did).Hash = e.computeRoot(did)
	}
}

// Compute fingerprints a single declaration without touching the unit.
func Compute(u *resolver.Unit, did ast.DeclID) uint64 {
	e := engine{u: u}
	return e.computeRoot(did)
}

type engine struct {
	u *resolver.Unit
	// stack holds the in-progress types of the current computation, with
	// the fixedness of the field edge that entered each one.
	stack []frame
}

type frame struct {
	decl      ast.DeclID
	edgeFixed bool
}

func (e *engine) computeRoot(did ast.DeclID) uint64 {
	e.stack = e.stack[:0]
	return e.compute(did, false)
}

// compute folds one type's structure into a fresh accumulator. Re-entering
// a type already on the stack contributes 0, which breaks dynamic cycles
// without corrupting the parent's value; reaching one through nothing but
// fixed-size fields means the resolver's cycle check was skipped, and that
// is an internal fault, not user error.
func (e *engine) compute(did ast.DeclID, edgeFixed bool) uint64 {
	for i := range e.stack {
		if e.stack[i].decl != did {
			continue
		}
		allFixed := edgeFixed
		for _, fr := range e.stack[i+1:] {
			allFixed = allFixed && fr.edgeFixed
		}
		if allFixed {
			panic(fmt.Sprintf(
				"hash: fixed-size cycle through %q reached the hash engine",
				e.u.Builder.Lookup(e.u.Builder.Decl(did).Qualified)))
		}
		return 0
	}
	e.stack = append(e.stack, frame{decl: did, edgeFixed: edgeFixed})
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()

	b := e.u.Builder
	d := b.Decl(did)

	v := Seed
	v = mixString(v, b.Lookup(d.Name))

	switch d.Kind {
	case ast.DeclStruct:
		for _, fid := range d.Fields {
			v = e.mixField(v, b.Field(fid))
		}
	case ast.DeclEnum:
		// Ordinals are excluded: renumbering keeps wire compatibility as
		// long as the value names stand.
		for _, vid := range d.Values {
			v = mixString(v, b.Lookup(b.Value(vid).Name))
		}
	}

	return bits.RotateLeft64(v, 1)
}

func (e *engine) mixField(v uint64, f *ast.Field) uint64 {
	b := e.u.Builder
	v = mixString(v, b.Lookup(f.Name))

	v = mixByte(v, byte(len(f.Dims)))
	for i := range f.Dims {
		dim := &f.Dims[i]
		v = mixByte(v, byte(dim.Mode))
		if dim.Mode == ast.DimConst {
			v = mixString(v, strconv.FormatInt(dim.Value, 10))
		}
	}

	if f.Type.IsPrimitive() {
		return mixUint64(v, primContribution[f.Type.Prim])
	}
	return mixUint64(v, e.compute(f.Type.Decl, f.IsFixedSize()))
}

// mixByte is the primitive step: rotate left 8 so every byte position
// influences all 64 bits, then fold the byte in.
func mixByte(v uint64, b byte) uint64 {
	return bits.RotateLeft64(v, 8) ^ uint64(b)
}

func mixString(v uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		v = mixByte(v, s[i])
	}
	return v
}

// mixUint64 folds a 64-bit contribution in as its 8 big-endian bytes.
func mixUint64(v, c uint64) uint64 {
	for shift := 56; shift >= 0; shift -= 8 {
		v = mixByte(v, byte(c>>shift))
	}
	return v
}
