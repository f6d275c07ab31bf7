package lexer

import (
	"sigil/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; error-recovery policy (skip the byte and keep
// scanning, or abort) belongs to the caller.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Report kinds passed to the Reporter.
const (
	ReportUnknownChar        = "UnknownChar"
	ReportUnterminatedString = "UnterminatedString"
	ReportUnterminatedBlock  = "UnterminatedBlockComment"
	ReportBadNumber          = "BadNumber"
)

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
