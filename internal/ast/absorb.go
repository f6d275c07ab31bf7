package ast

// Absorb moves every node of other into b, remapping arena handles by the
// current arena lengths. Both builders must share one interner so StringIDs
// carry over unchanged. This is the single merge step that joins parallel
// per-file parses before resolution; it must run single-threaded.
//
// Returns the remapped IDs of other's files, in their original order.
func (b *Builder) Absorb(other *Builder) []FileID {
	if other.Strings != b.Strings {
		panic("ast: Absorb requires a shared interner")
	}

	// Fields, consts and values carry no cross-arena handles before
	// resolution, so they copy verbatim.
	declBase := b.Decls.Append(other.Decls)
	fieldBase := b.Fields.Append(other.Fields)
	constBase := b.Consts.Append(other.Consts)
	valueBase := b.Values.Append(other.Values)

	// The appended decls still point at other's handle space; rewrite them
	// in place. remapIDs allocates, so other's slices stay untouched.
	for i := declBase + 1; i <= b.Decls.Len(); i++ {
		d := b.Decls.Get(i)
		d.Fields = remapIDs(d.Fields, fieldBase)
		d.Consts = remapIDs(d.Consts, constBase)
		d.Values = remapIDs(d.Values, valueBase)
	}

	out := make([]FileID, 0, other.Files.Len())
	for fi := uint32(1); fi <= other.Files.Len(); fi++ {
		nf := *other.Files.Get(fi)
		nf.Decls = remapIDs(nf.Decls, declBase)
		out = append(out, FileID(b.Files.Allocate(nf)))
	}
	return out
}

func remapIDs[T ~uint32](ids []T, base uint32) []T {
	if len(ids) == 0 {
		return nil
	}
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = id + T(base)
	}
	return out
}
