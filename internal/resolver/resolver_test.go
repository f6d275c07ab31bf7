package resolver_test

import (
	"fmt"
	"strings"
	"testing"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/lexer"
	"sigil/internal/parser"
	"sigil/internal/resolver"
	"sigil/internal/source"
)

// resolveStrings parses each source as its own file (the way a multi-file
// compilation unit arrives) and resolves the merged result.
func resolveStrings(t *testing.T, srcs ...string) (*resolver.Unit, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	interner := source.NewInterner()
	merged := ast.NewBuilder(ast.Hints{}, interner)
	bag := diag.NewBag(32)

	var files []ast.FileID
	for i, src := range srcs {
		id := fs.AddVirtual(fmt.Sprintf("test%d.sgl", i), []byte(src))
		b := ast.NewBuilder(ast.Hints{}, interner)
		lx := lexer.New(fs.Get(id), lexer.Options{})
		res := parser.ParseFile(fs, lx, b, parser.Options{
			Reporter: diag.BagReporter{Bag: bag},
		})
		if !res.Ok {
			first, _ := bag.FirstError()
			t.Fatalf("parse failed: %s", first.Message)
		}
		files = append(files, merged.Absorb(b)...)
	}

	unit, ok := resolver.Resolve(merged, files, diag.BagReporter{Bag: bag})
	return unit, bag, ok
}

func firstCode(t *testing.T, bag *diag.Bag) diag.Code {
	t.Helper()
	first, ok := bag.FirstError()
	if !ok {
		t.Fatal("no error in bag")
	}
	return first.Code
}

func TestResolveSimpleUnit(t *testing.T) {
	unit, _, ok := resolveStrings(t,
		"package a;\nstruct point_t { double x; double y; }")
	if !ok {
		t.Fatal("resolution failed")
	}
	if _, found := unit.Lookup("a.point_t"); !found {
		t.Error("a.point_t missing from symbol table")
	}
}

func TestResolveDuplicateType(t *testing.T) {
	_, bag, ok := resolveStrings(t,
		"package a;\nstruct p_t { double x; }",
		"package a;\nstruct p_t { double y; }")
	if ok {
		t.Fatal("expected failure")
	}
	if code := firstCode(t, bag); code != diag.ResDuplicateType {
		t.Errorf("code = %v, want ResDuplicateType", code)
	}
}

func TestResolveUnknownTypeNamesBothSides(t *testing.T) {
	_, bag, ok := resolveStrings(t, "struct Wrapper { InnerType field; }")
	if ok {
		t.Fatal("expected failure")
	}
	first, _ := bag.FirstError()
	if first.Code != diag.ResUnknownType {
		t.Fatalf("code = %v, want ResUnknownType", first.Code)
	}
	if !strings.Contains(first.Message, "InnerType") || !strings.Contains(first.Message, "Wrapper") {
		t.Errorf("message %q should name the reference and its user", first.Message)
	}
}

func TestResolveCrossFileReference(t *testing.T) {
	unit, _, ok := resolveStrings(t,
		"package a;\nstruct inner_t { double v; }",
		"package a;\nstruct outer_t { inner_t one; a.inner_t two[3]; }")
	if !ok {
		t.Fatal("resolution failed")
	}

	outerID, _ := unit.Lookup("a.outer_t")
	innerID, _ := unit.Lookup("a.inner_t")
	outer := unit.Builder.Decl(outerID)
	for i := 0; i < 2; i++ {
		f := unit.Builder.Field(outer.Fields[i])
		if f.Type.Decl != innerID {
			t.Errorf("field %d bound to %v, want a.inner_t", i, f.Type.Decl)
		}
	}
}

func TestResolveBareDeclarationFallback(t *testing.T) {
	// A packageless declaration is reachable from a packaged file by its
	// short name.
	unit, _, ok := resolveStrings(t,
		"struct bare_t { double v; }",
		"package a;\nstruct user_t { bare_t b; }")
	if !ok {
		t.Fatal("resolution failed")
	}
	bareID, _ := unit.Lookup("bare_t")
	userID, _ := unit.Lookup("a.user_t")
	f := unit.Builder.Field(unit.Builder.Decl(userID).Fields[0])
	if f.Type.Decl != bareID {
		t.Error("reference should fall back to the bare declaration")
	}
}

func TestResolveDynamicDimension(t *testing.T) {
	unit, _, ok := resolveStrings(t,
		"struct s { int32_t n; double samples[n]; }")
	if !ok {
		t.Fatal("resolution failed")
	}
	sID, _ := unit.Lookup("s")
	d := unit.Builder.Decl(sID)
	f := unit.Builder.Field(d.Fields[1])
	if f.Dims[0].Mode != ast.DimDynamic {
		t.Fatalf("dim mode = %v, want dynamic", f.Dims[0].Mode)
	}
	if f.Dims[0].FieldRef != d.Fields[0] {
		t.Error("dim should bind to the sizing field n")
	}
}

func TestResolveForwardDimensionRejected(t *testing.T) {
	_, bag, ok := resolveStrings(t,
		"struct s { double samples[n]; int32_t n; }")
	if ok {
		t.Fatal("expected failure: sizing field declared after the array")
	}
	if code := firstCode(t, bag); code != diag.ResUnknownDimensionField {
		t.Errorf("code = %v, want ResUnknownDimensionField", code)
	}
}

func TestResolveNonIntegralDimensionRejected(t *testing.T) {
	_, bag, ok := resolveStrings(t,
		"struct s { double n; double samples[n]; }")
	if ok {
		t.Fatal("expected failure")
	}
	if code := firstCode(t, bag); code != diag.ResBadDimensionType {
		t.Errorf("code = %v, want ResBadDimensionType", code)
	}
}

func TestResolveArrayDimensionFieldRejected(t *testing.T) {
	_, bag, ok := resolveStrings(t,
		"struct s { int32_t ns[2]; double samples[ns]; }")
	if ok {
		t.Fatal("expected failure: sizing field must be scalar")
	}
	if code := firstCode(t, bag); code != diag.ResBadDimensionType {
		t.Errorf("code = %v, want ResBadDimensionType", code)
	}
}

func TestResolveConstValuedDimension(t *testing.T) {
	unit, _, ok := resolveStrings(t,
		"struct s { const int32_t N = 16; double window[N]; }")
	if !ok {
		t.Fatal("resolution failed")
	}
	sID, _ := unit.Lookup("s")
	f := unit.Builder.Field(unit.Builder.Decl(sID).Fields[0])
	if f.Dims[0].Mode != ast.DimConst {
		t.Fatalf("dim mode = %v, want const after resolution", f.Dims[0].Mode)
	}
	if f.Dims[0].Value != 16 {
		t.Errorf("dim value = %d, want 16", f.Dims[0].Value)
	}
}

func TestResolveFixedRecursionRejected(t *testing.T) {
	_, bag, ok := resolveStrings(t, "struct node_t { node_t next; }")
	if ok {
		t.Fatal("expected failure: fixed self-containment")
	}
	if code := firstCode(t, bag); code != diag.ResIllegalRecursion {
		t.Errorf("code = %v, want ResIllegalRecursion", code)
	}
}

func TestResolveFixedMutualRecursionRejected(t *testing.T) {
	_, bag, ok := resolveStrings(t,
		"struct a_t { b_t b; }",
		"struct b_t { a_t a[2]; }")
	if ok {
		t.Fatal("expected failure: fixed cycle through two types")
	}
	if code := firstCode(t, bag); code != diag.ResIllegalRecursion {
		t.Errorf("code = %v, want ResIllegalRecursion", code)
	}
}

func TestResolveDynamicCycleAllowed(t *testing.T) {
	_, _, ok := resolveStrings(t,
		"struct a_t { int32_t n; b_t items[n]; }",
		"struct b_t { int32_t m; a_t items[m]; }")
	if !ok {
		t.Fatal("a cycle through dynamic dimensions must resolve")
	}
}

func TestResolveDynamicSelfReferenceAllowed(t *testing.T) {
	_, _, ok := resolveStrings(t,
		"struct tree_t { int32_t nchildren; tree_t children[nchildren]; }")
	if !ok {
		t.Fatal("dynamic self-reference must resolve")
	}
}

func TestResolveDeterministicOrder(t *testing.T) {
	unit, _, ok := resolveStrings(t,
		"struct one_t { double v; }\nstruct two_t { double v; }",
		"struct three_t { double v; }")
	if !ok {
		t.Fatal("resolution failed")
	}
	want := []string{"one_t", "two_t", "three_t"}
	if len(unit.Decls) != len(want) {
		t.Fatalf("decl count = %d", len(unit.Decls))
	}
	for i, did := range unit.Decls {
		if got := unit.Builder.Lookup(unit.Builder.Decl(did).Qualified); got != want[i] {
			t.Errorf("decl %d = %q, want %q", i, got, want[i])
		}
	}
}
