package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/diagfmt"
	"sigil/internal/driver"
	"sigil/internal/source"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.sgl...",
	Short: "Compile a schema unit and print its type fingerprints",
	Long: `Compile runs the full front end (lex, parse, resolve, hash) over one
compilation unit and prints the 64-bit fingerprint of every declared type.
Input files come from the arguments or from [compile].inputs in sigil.toml.`,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().String("package-prefix", "", "prefix prepended to every package name")
	compileCmd.Flags().Bool("no-cache", false, "recompute fingerprints even for unchanged inputs")
	compileCmd.Flags().Int("jobs", 0, "parallel file parses (0 = number of CPUs)")
	compileCmd.Flags().Bool("dump", false, "print the structural dump instead of fingerprint lines")
}

func runCompile(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("package-prefix")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	dump, _ := cmd.Flags().GetBool("dump")

	inputs := args
	manifest, found, err := loadManifest(".")
	if err != nil {
		return err
	}
	if found {
		if len(inputs) == 0 {
			inputs = manifest.inputPaths()
		}
		if prefix == "" {
			prefix = manifest.Config.Package.Prefix
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files: pass them as arguments or list them in [compile].inputs of sigil.toml")
	}

	var cache *driver.FingerprintCache
	if !noCache && !dump {
		// Cache problems are not compile problems; fall back silently.
		cache, _ = driver.OpenFingerprintCache("sigil")
		if cached, ok := tryCache(cache, inputs, prefix); ok {
			for _, th := range cached {
				fmt.Fprintf(os.Stdout, "%s %#016x\n", th.Name, th.Hash)
			}
			return nil
		}
	}

	result, err := driver.Compile(cmd.Context(), inputs, driver.CompileOptions{
		MaxDiagnostics: maxDiagnostics(cmd),
		PackagePrefix:  prefix,
		Jobs:           jobs,
	})
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)
	if !result.Ok {
		return fmt.Errorf("compilation failed")
	}

	if dump {
		return diagfmt.DumpDecls(os.Stdout, result.Builder, result.Unit.Decls)
	}

	types := make([]driver.TypeHash, 0, len(result.Unit.Decls))
	for _, did := range result.Unit.Decls {
		d := result.Builder.Decl(did)
		th := driver.TypeHash{Name: result.Builder.Lookup(d.Qualified), Hash: d.Hash}
		types = append(types, th)
		fmt.Fprintf(os.Stdout, "%s %#016x\n", th.Name, th.Hash)
	}

	if cache != nil {
		key := driver.UnitKey(result.FileSet, prefix)
		_ = cache.Put(key, types)
	}
	return nil
}

// tryCache loads the inputs just far enough to compute the unit key and
// probe the cache. Any miss or error falls through to a full compile.
func tryCache(cache *driver.FingerprintCache, inputs []string, prefix string) ([]driver.TypeHash, bool) {
	if cache == nil {
		return nil, false
	}
	fs := source.NewFileSet()
	for _, path := range inputs {
		if _, err := fs.Load(path); err != nil {
			return nil, false
		}
	}
	types, ok, err := cache.Get(driver.UnitKey(fs, prefix))
	if err != nil || !ok {
		return nil, false
	}
	return types, true
}
