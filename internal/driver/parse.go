package driver

import (
	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/lexer"
	"sigil/internal/parser"
	"sigil/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Ok      bool
}

// Parse lexes and parses one schema file. The parser stops at its first
// error; Ok reports whether the file parsed completely.
func Parse(path string, maxDiagnostics int, packagePrefix string) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{
		Reporter: reporterAdapter.Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:      diag.BagReporter{Bag: bag},
		PackagePrefix: packagePrefix,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
		Ok:      result.Ok && !bag.HasErrors(),
	}, nil
}
