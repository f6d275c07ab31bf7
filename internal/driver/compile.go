package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/hash"
	"sigil/internal/lexer"
	"sigil/internal/parser"
	"sigil/internal/resolver"
	"sigil/internal/source"
)

// CompileOptions configures the full pipeline.
type CompileOptions struct {
	MaxDiagnostics int
	PackagePrefix  string
	// Jobs caps parallel per-file parses; 0 means GOMAXPROCS.
	Jobs int
}

type CompileResult struct {
	FileSet *source.FileSet
	Builder *ast.Builder
	Files   []ast.FileID
	Unit    *resolver.Unit
	Bag     *diag.Bag
	Ok      bool
}

type perFileParse struct {
	builder *ast.Builder
	file    ast.FileID
	bag     *diag.Bag
	ok      bool
}

// Compile runs the whole front end over a compilation unit: load every
// file, lex+parse them in parallel, merge the per-file ASTs, resolve, and
// fingerprint. Per-file parsing shares nothing but the string interner;
// the Absorb merge and everything after it run single-threaded. Any failed
// phase skips the phases behind it and leaves Ok false, with the reasons in
// the Bag.
func Compile(ctx context.Context, paths []string, opts CompileOptions) (*CompileResult, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 64
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fs := source.NewFileSet()
	fileIDs := make([]source.FileID, 0, len(paths))
	for _, path := range paths {
		id, err := fs.Load(path)
		if err != nil {
			return nil, err
		}
		fileIDs = append(fileIDs, id)
	}

	interner := source.NewInterner()
	parses := make([]perFileParse, len(fileIDs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range fileIDs {
		i := i
		g.Go(func() error {
			file := fs.Get(fileIDs[i])
			bag := diag.NewBag(opts.MaxDiagnostics)
			reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
			lx := lexer.New(file, lexer.Options{
				Reporter: reporterAdapter.Reporter(),
			})
			builder := ast.NewBuilder(ast.Hints{Files: 1}, interner)

			res := parser.ParseFile(fs, lx, builder, parser.Options{
				Reporter:      diag.BagReporter{Bag: bag},
				PackagePrefix: opts.PackagePrefix,
			})
			parses[i] = perFileParse{
				builder: builder,
				file:    res.File,
				bag:     bag,
				ok:      res.Ok && !bag.HasErrors(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Single-threaded merge, in input order so declaration order is stable.
	bag := diag.NewBag(opts.MaxDiagnostics * max(len(paths), 1))
	merged := ast.NewBuilder(ast.Hints{}, interner)
	var files []ast.FileID
	allParsed := true
	for i := range parses {
		files = append(files, merged.Absorb(parses[i].builder)...)
		bag.Merge(parses[i].bag)
		allParsed = allParsed && parses[i].ok
	}

	out := &CompileResult{
		FileSet: fs,
		Builder: merged,
		Files:   files,
		Bag:     bag,
	}
	if !allParsed {
		return out, nil
	}

	unit, ok := resolver.Resolve(merged, files, diag.BagReporter{Bag: bag})
	out.Unit = unit
	if !ok {
		return out, nil
	}

	hash.ComputeAll(unit)
	out.Ok = !bag.HasErrors()
	return out, nil
}
