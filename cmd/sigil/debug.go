package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/ast"
	"sigil/internal/diag"
	"sigil/internal/diagfmt"
	"sigil/internal/driver"
	"sigil/internal/hash"
	"sigil/internal/resolver"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] file.sgl",
	Short: "Dump the parsed structure of a schema file",
	Long: `Debug parses one schema file and prints the structural dump:
one block per declaration with attached comments, members and array
dimensions. Fingerprints are filled in when the file resolves on its own
(no references into other files); otherwise they print as zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().String("package-prefix", "", "prefix prepended to every package name")
}

func runDebug(cmd *cobra.Command, args []string) error {
	prefix, err := cmd.Flags().GetString("package-prefix")
	if err != nil {
		return fmt.Errorf("failed to get package-prefix flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd), prefix)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)
	if !result.Ok {
		return fmt.Errorf("%s: parse failed", args[0])
	}

	// Hash annotation is best-effort: a file that references types it does
	// not declare still dumps, just without fingerprints.
	files := []ast.FileID{result.FileID}
	if unit, ok := resolver.Resolve(result.Builder, files, diag.NopReporter{}); ok {
		hash.ComputeAll(unit)
	}

	return diagfmt.DumpDecls(os.Stdout, result.Builder, result.Builder.File(result.FileID).Decls)
}
