// Package diagfmt renders the compiler's introspection output: the token
// stream dump, the structural dump, and pretty-printed diagnostics. The
// dump formats are compared byte-for-byte against the tool being replaced,
// so their shape is frozen.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"sigil/internal/source"
	"sigil/internal/token"
)

// DumpTokens writes one row per token (comments included, in stream order)
// in the fixed columnar format:
//
//	tok#   line   col   : token
//	     0      1      0: struct
//
// Columns are 0-based here, unlike diagnostics: the dump is compared
// byte-for-byte against the tool being replaced, which counts from 0.
func DumpTokens(w io.Writer, fs *source.FileSet, toks []token.Token) error {
	if _, err := fmt.Fprintf(w, "%-6s %-6s %-6s: token\n", "tok#", "line", "col"); err != nil {
		return err
	}

	n := 0
	row := func(sp source.Span, text string) error {
		lc, _ := fs.Resolve(sp)
		_, err := fmt.Fprintf(w, "%6d %6d %6d: %s\n", n, lc.Line, lc.Col-1, text)
		n++
		return err
	}

	for i := range toks {
		tok := &toks[i]
		for _, tr := range tok.Leading {
			if !tr.IsComment() {
				continue
			}
			if err := row(tr.Span, tr.CommentText()); err != nil {
				return err
			}
		}
		if tok.Kind == token.EOF {
			continue
		}
		if err := row(tok.Span, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

type tokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// DumpTokensJSON writes the token stream as a JSON array, one object per
// significant token. Comments stay trivia here; the columnar dump is the
// one that carries them.
func DumpTokensJSON(w io.Writer, fs *source.FileSet, toks []token.Token) error {
	out := make([]tokenJSON, 0, len(toks))
	for i := range toks {
		tok := &toks[i]
		if tok.Kind == token.EOF {
			continue
		}
		lc, _ := fs.Resolve(tok.Span)
		out = append(out, tokenJSON{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: lc.Line,
			Col:  lc.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
