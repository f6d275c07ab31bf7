package lexer

import (
	"sigil/internal/diag"
	"sigil/internal/source"
)

// ReporterAdapter maps the lexer's thin report kinds onto diag codes and
// stores the diagnostics in a Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a lexer.Reporter writing into the adapter's bag.
func (r *ReporterAdapter) Reporter() Reporter {
	return bagReporter{bag: r.Bag}
}

type bagReporter struct {
	bag *diag.Bag
}

func (r bagReporter) Report(kind string, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case ReportUnknownChar:
		code = diag.LexUnknownChar
	case ReportUnterminatedString:
		code = diag.LexUnterminatedString
	case ReportUnterminatedBlock:
		code = diag.LexUnterminatedBlockComment
	case ReportBadNumber:
		code = diag.LexBadNumber
	}
	r.bag.Add(diag.NewError(code, span, msg))
}
