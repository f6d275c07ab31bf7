package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"sigil/internal/ast"
)

// DumpDecls writes the structural dump: one block per declaration, in
// declaration order. Struct blocks follow the fixed legacy shape,
//
//	struct geometry.point_t [hash=0x00000000deadbeef]
//		double                x
//		double                ranges [ (const) 8 ] [ (var) n ]
//
// with attached doc comments rendered as // lines above their owner.
// Hashes print as zero when the engine has not run.
func DumpDecls(w io.Writer, b *ast.Builder, decls []ast.DeclID) error {
	for _, did := range decls {
		if err := dumpDecl(w, b, b.Decl(did)); err != nil {
			return err
		}
	}
	return nil
}

func dumpDecl(w io.Writer, b *ast.Builder, d *ast.Decl) error {
	if err := dumpComment(w, d.Comment, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s [hash=%#016x]\n",
		d.Kind, b.Lookup(d.Qualified), d.Hash); err != nil {
		return err
	}

	switch d.Kind {
	case ast.DeclStruct:
		for _, cid := range d.Consts {
			if err := dumpConst(w, b, b.Const(cid)); err != nil {
				return err
			}
		}
		for _, fid := range d.Fields {
			if err := dumpField(w, b, b.Field(fid)); err != nil {
				return err
			}
		}
	case ast.DeclEnum:
		for _, vid := range d.Values {
			v := b.Value(vid)
			if err := dumpComment(w, v.Comment, "\t"); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "\t%s = %d\n", b.Lookup(v.Name), v.Ordinal); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpField(w io.Writer, b *ast.Builder, f *ast.Field) error {
	if err := dumpComment(w, f.Comment, "\t"); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\t%-20s  %s", typeName(b, f), b.Lookup(f.Name))
	for i := range f.Dims {
		dim := &f.Dims[i]
		switch dim.Mode {
		case ast.DimConst:
			fmt.Fprintf(&sb, " [ (const) %d ]", dim.Value)
		case ast.DimDynamic:
			fmt.Fprintf(&sb, " [ (var) %s ]", dim.Text)
		}
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func dumpConst(w io.Writer, b *ast.Builder, c *ast.Const) error {
	if err := dumpComment(w, c.Comment, "\t"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\tconst %-14s  %s = %s\n",
		c.Type, b.Lookup(c.Name), c.Value)
	return err
}

// typeName renders a field's type the way the source names it: the
// primitive spelling or the qualified name.
func typeName(b *ast.Builder, f *ast.Field) string {
	if f.Type.IsPrimitive() {
		return f.Type.Prim.String()
	}
	return b.Lookup(f.Type.Name)
}

func dumpComment(w io.Writer, comment, indent string) error {
	if comment == "" {
		return nil
	}
	for _, line := range strings.Split(comment, "\n") {
		if _, err := fmt.Fprintf(w, "%s// %s\n", indent, line); err != nil {
			return err
		}
	}
	return nil
}
