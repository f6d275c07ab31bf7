package token

import (
	"sigil/internal/source"
)

// Token represents a single source token with its location and leading
// trivia. Tokens are immutable once produced by the lexer.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPackage, KwStruct, KwEnum, KwConst:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Assign, Semicolon, Comma, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// LeadingComment joins the comment text of all leading comment trivia with
// newlines, the shape the parser attaches to declarations. Blank lines
// between comments and the token do not break the join.
func (t Token) LeadingComment() string {
	out := ""
	for _, tr := range t.Leading {
		if !tr.IsComment() {
			continue
		}
		if out == "" {
			out = tr.CommentText()
		} else {
			out += "\n" + tr.CommentText()
		}
	}
	return out
}
