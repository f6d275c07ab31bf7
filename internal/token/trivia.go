package token

import (
	"strings"

	"sigil/internal/source"
)

// TriviaKind classifies non-significant source text collected by the lexer.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is a run of whitespace or one comment. Text is the exact source
// slice, so dumps can reproduce the original bytes.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or block comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}

// CommentText returns the comment content with its comment markers removed.
// Line comments drop the leading slashes and any following spaces. Block
// comments drop the /* */ frame and, per line, leading whitespace followed
// by asterisks (plus one space after the asterisks when present), keeping
// embedded newlines. This is the canonical text attached to declarations.
func (t Trivia) CommentText() string {
	switch t.Kind {
	case TriviaLineComment:
		s := strings.TrimLeft(t.Text, "/")
		return strings.TrimLeft(s, " ")
	case TriviaBlockComment:
		return cleanBlockComment(t.Text)
	default:
		return ""
	}
}

func cleanBlockComment(text string) string {
	body := strings.TrimPrefix(text, "/*")
	body = strings.TrimSuffix(body, "*/")

	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if stripped := strings.TrimLeft(line, "*"); stripped != line {
			// Leading asterisks are decoration; one space after them is
			// part of the frame too.
			line = strings.TrimPrefix(stripped, " ")
		}
		out = append(out, strings.TrimRight(line, " \t"))
	}

	// The comment frame itself contributes empty first/last lines.
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
