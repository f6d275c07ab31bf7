package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/diagfmt"
	"sigil/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sgl",
	Short: "Dump the token stream of a schema file",
	Long:  `Tokenize scans one schema file and prints every token (comments included) in the fixed columnar dump format`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		err = diagfmt.DumpTokens(os.Stdout, result.FileSet, result.Tokens)
	case "json":
		err = diagfmt.DumpTokensJSON(os.Stdout, result.FileSet, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: lexical errors", args[0])
	}
	return nil
}
