package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"sigil/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("pos.sgl", []byte("abc\ndef\n\nx"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1}, // 'a'
		{2, 1, 3}, // 'c'
		{3, 1, 4}, // the newline belongs to line 1
		{4, 2, 1}, // 'd'
		{6, 2, 3}, // 'f'
		{8, 3, 1}, // empty line
		{9, 4, 1}, // 'x'
	}
	for _, tc := range cases {
		sp := source.Span{File: id, Start: tc.off, End: tc.off}
		start, _ := fs.Resolve(sp)
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("offset %d = %d:%d, want %d:%d",
				tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("lines.sgl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		num  uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.num); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.sgl")
	raw := []byte("\xef\xbb\xbfstruct s {\r\n}\r\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if string(f.Content) != "struct s {\n}\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 4, End: 8}
	b := source.Span{File: 0, Start: 10, End: 12}
	c := a.Cover(b)
	if c.Start != 4 || c.End != 12 {
		t.Errorf("cover = %+v", c)
	}
	if got := b.Cover(a); got != c {
		t.Errorf("cover is not symmetric: %+v vs %+v", got, c)
	}
	other := source.Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file cover changed the span: %+v", got)
	}
}

func TestInternerDedup(t *testing.T) {
	in := source.NewInterner()

	a := in.Intern("point_t")
	b := in.Intern("point_t")
	c := in.Intern("other")
	if a != b {
		t.Error("same string must intern to one ID")
	}
	if a == c {
		t.Error("different strings must not share an ID")
	}
	if got := in.MustLookup(a); got != "point_t" {
		t.Errorf("lookup = %q", got)
	}
	if !in.Has(c) {
		t.Error("Has must accept a valid ID")
	}
	if in.Has(source.StringID(999)) {
		t.Error("Has must reject an out-of-range ID")
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := source.NewInterner()
	id := in.Intern("")
	if got := in.MustLookup(id); got != "" {
		t.Errorf("empty string round-trip = %q", got)
	}
}

func TestInternerConcurrent(t *testing.T) {
	in := source.NewInterner()
	names := []string{"a_t", "b_t", "c_t", "d_t"}

	done := make(chan [4]source.StringID)
	for g := 0; g < 8; g++ {
		go func() {
			var ids [4]source.StringID
			for i, n := range names {
				ids[i] = in.Intern(n)
			}
			done <- ids
		}()
	}

	first := <-done
	for g := 1; g < 8; g++ {
		if got := <-done; got != first {
			t.Fatalf("goroutines disagree on IDs: %v vs %v", got, first)
		}
	}
	// Len counts the reserved empty string too.
	if in.Len() != len(names)+1 {
		t.Errorf("interner len = %d, want %d", in.Len(), len(names)+1)
	}
}
