package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sigil/internal/diag"
	"sigil/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// Pretty renders every diagnostic of the bag in the human-readable form
//
//	path:line:col: error [SGL3002]: unknown type "a.b_t" referenced by "a.a_t"
//	    b_t field;
//	    ^~~
//
// followed by its notes in the same shape. Call bag.Sort() first for
// position order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s: %s [%s]: %s\n",
		position(fs, d.Primary), sev, d.Code.ID(), d.Message)
	underline(w, fs, d.Primary, opts)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "%s: note: %s\n", position(fs, n.Span), n.Msg)
		underline(w, fs, n.Span, opts)
	}
}

func position(fs *source.FileSet, sp source.Span) string {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}

// underline prints the source line under the message with a ^~~~ marker for
// the span. Multi-line spans mark only the first line.
func underline(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	markLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		markLen = int(end.Col - start.Col)
	}
	mark := "^" + strings.Repeat("~", markLen-1)
	if opts.Color {
		mark = color.New(color.FgHiRed, color.Bold).Sprint(mark)
	}

	fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(line, "\t", " "))
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col-1)), mark)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgHiYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgHiCyan).Sprint(label)
	}
}
