package parser_test

import (
	"testing"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/lexer"
	"sigil/internal/parser"
	"sigil/internal/source"
)

// parseString parses an in-memory schema and returns the builder, the file
// node, and the bag of diagnostics.
func parseString(t *testing.T, src string) (*ast.Builder, ast.FileID, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sgl", []byte(src))
	bag := diag.NewBag(16)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: adapter.Reporter()})
	b := ast.NewBuilder(ast.Hints{}, nil)

	res := parser.ParseFile(fs, lx, b, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return b, res.File, bag, res.Ok && !bag.HasErrors()
}

func mustParse(t *testing.T, src string) (*ast.Builder, ast.FileID) {
	t.Helper()
	b, file, bag, ok := parseString(t, src)
	if !ok {
		first, _ := bag.FirstError()
		t.Fatalf("parse failed: %s: %s", first.Code.ID(), first.Message)
	}
	return b, file
}

func onlyDecl(t *testing.T, b *ast.Builder, file ast.FileID) *ast.Decl {
	t.Helper()
	decls := b.File(file).Decls
	if len(decls) != 1 {
		t.Fatalf("decl count = %d, want 1", len(decls))
	}
	return b.Decl(decls[0])
}

func TestParsePointStruct(t *testing.T) {
	b, file := mustParse(t, "struct Point { double x; double y; }")

	d := onlyDecl(t, b, file)
	if d.Kind != ast.DeclStruct {
		t.Fatalf("kind = %v, want struct", d.Kind)
	}
	if got := b.Lookup(d.Qualified); got != "Point" {
		t.Errorf("qualified = %q, want Point (no package)", got)
	}
	if len(d.Fields) != 2 {
		t.Fatalf("field count = %d, want 2", len(d.Fields))
	}
	for i, wantName := range []string{"x", "y"} {
		f := b.Field(d.Fields[i])
		if got := b.Lookup(f.Name); got != wantName {
			t.Errorf("field %d name = %q, want %q", i, got, wantName)
		}
		if f.Type.Prim != ast.PrimDouble {
			t.Errorf("field %d type = %v, want double", i, f.Type.Prim)
		}
	}
}

func TestParsePackageQualifiesDecls(t *testing.T) {
	b, file := mustParse(t, "package geometry;\nstruct point_t { double x; }")

	d := onlyDecl(t, b, file)
	if got := b.Lookup(d.Package); got != "geometry" {
		t.Errorf("package = %q", got)
	}
	if got := b.Lookup(d.Qualified); got != "geometry.point_t" {
		t.Errorf("qualified = %q", got)
	}
}

func TestParsePackagePrefix(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sgl", []byte("package geo;\nstruct p_t { other_t o; }"))
	b := ast.NewBuilder(ast.Hints{}, nil)
	lx := lexer.New(fs.Get(id), lexer.Options{})

	res := parser.ParseFile(fs, lx, b, parser.Options{PackagePrefix: "com.acme"})
	if !res.Ok {
		t.Fatal("parse failed")
	}
	d := b.Decl(b.File(res.File).Decls[0])
	if got := b.Lookup(d.Qualified); got != "com.acme.geo.p_t" {
		t.Errorf("qualified = %q", got)
	}
	if got := b.Lookup(b.Field(d.Fields[0]).Type.Name); got != "com.acme.geo.other_t" {
		t.Errorf("field type = %q", got)
	}
}

func TestParseUnqualifiedRefGetsCurrentPackage(t *testing.T) {
	b, file := mustParse(t, "package a;\nstruct s_t { inner_t x; a.b.explicit_t y; }")

	d := onlyDecl(t, b, file)
	if got := b.Lookup(b.Field(d.Fields[0]).Type.Name); got != "a.inner_t" {
		t.Errorf("unqualified ref = %q, want a.inner_t", got)
	}
	if got := b.Lookup(b.Field(d.Fields[1]).Type.Name); got != "a.b.explicit_t" {
		t.Errorf("qualified ref = %q, want kept verbatim", got)
	}
}

func TestParseMultipleDeclarators(t *testing.T) {
	b, file := mustParse(t, "struct s { int32_t a, b, c[4]; }")

	d := onlyDecl(t, b, file)
	if len(d.Fields) != 3 {
		t.Fatalf("field count = %d, want 3", len(d.Fields))
	}
	names := []string{"a", "b", "c"}
	for i, want := range names {
		f := b.Field(d.Fields[i])
		if got := b.Lookup(f.Name); got != want {
			t.Errorf("field %d = %q, want %q", i, got, want)
		}
		if f.Type.Prim != ast.PrimInt32 {
			t.Errorf("field %d type = %v", i, f.Type.Prim)
		}
	}
	if dims := b.Field(d.Fields[2]).Dims; len(dims) != 1 || dims[0].Value != 4 {
		t.Errorf("c dims = %+v, want one const dim of 4", dims)
	}
	if len(b.Field(d.Fields[0]).Dims) != 0 {
		t.Error("a should be scalar")
	}
}

func TestParseDimensions(t *testing.T) {
	b, file := mustParse(t, "struct s { int32_t n; double grid[8][n]; }")

	d := onlyDecl(t, b, file)
	dims := b.Field(d.Fields[1]).Dims
	if len(dims) != 2 {
		t.Fatalf("dim count = %d, want 2", len(dims))
	}
	if dims[0].Mode != ast.DimConst || dims[0].Value != 8 {
		t.Errorf("dim 0 = %+v, want const 8", dims[0])
	}
	if dims[1].Mode != ast.DimDynamic || dims[1].Text != "n" {
		t.Errorf("dim 1 = %+v, want dynamic n", dims[1])
	}
}

func TestParseZeroArraySizeRejected(t *testing.T) {
	_, _, bag, ok := parseString(t, "struct s { double v[0]; }")
	if ok {
		t.Fatal("expected failure")
	}
	first, _ := bag.FirstError()
	if first.Code != diag.SynBadArraySize {
		t.Errorf("code = %v, want SynBadArraySize", first.Code)
	}
}

func TestParseInlineConsts(t *testing.T) {
	b, file := mustParse(t, "struct s { const int32_t A = 1, B = 0x10; const double PI = 3.14; }")

	d := onlyDecl(t, b, file)
	if len(d.Consts) != 3 {
		t.Fatalf("const count = %d, want 3", len(d.Consts))
	}
	a := b.Const(d.Consts[0])
	if b.Lookup(a.Name) != "A" || a.Value != "1" || a.Type != ast.PrimInt32 {
		t.Errorf("A = %+v", a)
	}
	if c := b.Const(d.Consts[1]); c.Value != "0x10" {
		t.Errorf("B value = %q, want source spelling kept", c.Value)
	}
	if c := b.Const(d.Consts[2]); c.Type != ast.PrimDouble {
		t.Errorf("PI type = %v", c.Type)
	}
}

func TestParseConstRangeChecked(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"struct s { const int8_t X = 200; }", diag.SynConstOutOfRange},
		{"struct s { const int16_t X = 40000; }", diag.SynConstOutOfRange},
		{"struct s { const string X = \"no\"; }", diag.SynBadConstType},
		{"struct s { const int32_t X = 1.5; }", diag.SynBadConstValue},
	}
	for _, tc := range cases {
		_, _, bag, ok := parseString(t, tc.src)
		if ok {
			t.Errorf("%q: expected failure", tc.src)
			continue
		}
		if first, _ := bag.FirstError(); first.Code != tc.code {
			t.Errorf("%q: code = %v, want %v", tc.src, first.Code, tc.code)
		}
	}
}

func TestParseDuplicateMemberRejected(t *testing.T) {
	_, _, bag, ok := parseString(t, "struct s { double x; int32_t x; }")
	if ok {
		t.Fatal("expected failure")
	}
	if first, _ := bag.FirstError(); first.Code != diag.SynDuplicateMember {
		t.Errorf("code = %v, want SynDuplicateMember", first.Code)
	}
}

func TestParseEnumOrdinals(t *testing.T) {
	b, file := mustParse(t, "enum Color { RED, GREEN, BLUE = 5, PURPLE }")

	d := onlyDecl(t, b, file)
	if d.Kind != ast.DeclEnum {
		t.Fatalf("kind = %v, want enum", d.Kind)
	}
	want := []struct {
		name     string
		ordinal  int64
		explicit bool
	}{
		{"RED", 0, false},
		{"GREEN", 1, false},
		{"BLUE", 5, true},
		{"PURPLE", 6, false},
	}
	if len(d.Values) != len(want) {
		t.Fatalf("value count = %d, want %d", len(d.Values), len(want))
	}
	for i, w := range want {
		v := b.Value(d.Values[i])
		if b.Lookup(v.Name) != w.name || v.Ordinal != w.ordinal || v.Explicit != w.explicit {
			t.Errorf("value %d = %s/%d/%v, want %+v", i, b.Lookup(v.Name), v.Ordinal, v.Explicit, w)
		}
	}
}

func TestParseEnumDuplicateOrdinal(t *testing.T) {
	_, _, bag, ok := parseString(t, "enum E { A = 1, B = 1 }")
	if ok {
		t.Fatal("expected failure")
	}
	if first, _ := bag.FirstError(); first.Code != diag.SynDuplicateOrdinal {
		t.Errorf("code = %v, want SynDuplicateOrdinal", first.Code)
	}
}

func TestParseCommentAttachment(t *testing.T) {
	src := `// 2D point in meters
struct point_t {
	// east offset
	double x;
	double y;
}`
	b, file := mustParse(t, src)

	d := onlyDecl(t, b, file)
	if d.Comment != "2D point in meters" {
		t.Errorf("decl comment = %q", d.Comment)
	}
	if got := b.Field(d.Fields[0]).Comment; got != "east offset" {
		t.Errorf("x comment = %q", got)
	}
	if got := b.Field(d.Fields[1]).Comment; got != "" {
		t.Errorf("y comment = %q, want empty", got)
	}
}

func TestParseCommentSurvivesBlankLine(t *testing.T) {
	src := "// doc line\n\nstruct s { double x; }"
	b, file := mustParse(t, src)
	if d := onlyDecl(t, b, file); d.Comment != "doc line" {
		t.Errorf("comment = %q, blank lines must not break attachment", d.Comment)
	}
}

func TestParseCommentOnFirstDeclaratorOnly(t *testing.T) {
	src := "struct s {\n\t// shared statement\n\tint32_t a, b;\n}"
	b, file := mustParse(t, src)
	d := onlyDecl(t, b, file)
	if got := b.Field(d.Fields[0]).Comment; got != "shared statement" {
		t.Errorf("a comment = %q", got)
	}
	if got := b.Field(d.Fields[1]).Comment; got != "" {
		t.Errorf("b comment = %q, want empty", got)
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	// Single-pass abort: one error, nothing after it.
	_, _, bag, ok := parseString(t, "struct s { double }; struct t { }")
	if ok {
		t.Fatal("expected failure")
	}
	errCount := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("error count = %d, want exactly 1", errCount)
	}
}

func TestParseNestedStructRejected(t *testing.T) {
	_, _, bag, ok := parseString(t, "struct outer { struct inner { } }")
	if ok {
		t.Fatal("expected failure")
	}
	if first, _ := bag.FirstError(); first.Code != diag.SynNestedDeclNotAllowed {
		t.Errorf("code = %v, want SynNestedDeclNotAllowed", first.Code)
	}
}

func TestParseUnexpectedTopLevel(t *testing.T) {
	_, _, bag, ok := parseString(t, "double x;")
	if ok {
		t.Fatal("expected failure")
	}
	if first, _ := bag.FirstError(); first.Code != diag.SynUnexpectedTopLevel {
		t.Errorf("code = %v, want SynUnexpectedTopLevel", first.Code)
	}
}
