package token_test

import (
	"testing"

	"sigil/internal/token"
)

func TestCommentTextLine(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"// simple", "simple"},
		{"//no space", "no space"},
		{"/// doc style", "doc style"},
		{"//", ""},
		{"//   padded", "padded"},
	}
	for _, tc := range cases {
		tr := token.Trivia{Kind: token.TriviaLineComment, Text: tc.raw}
		if got := tr.CommentText(); got != tc.want {
			t.Errorf("CommentText(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCommentTextBlock(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"one line", "/* velocity in m/s */", "velocity in m/s"},
		{"framed", "/* first\n * second\n */", "first\nsecond"},
		{"no asterisks", "/* first\n   second\n*/", "first\nsecond"},
		{"empty", "/**/", ""},
		{"only frame", "/*\n *\n */", ""},
	}
	for _, tc := range cases {
		tr := token.Trivia{Kind: token.TriviaBlockComment, Text: tc.raw}
		if got := tr.CommentText(); got != tc.want {
			t.Errorf("%s: CommentText = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCommentTextNonComment(t *testing.T) {
	tr := token.Trivia{Kind: token.TriviaSpace, Text: "   "}
	if got := tr.CommentText(); got != "" {
		t.Errorf("space trivia should have no comment text, got %q", got)
	}
}

func TestLeadingCommentJoins(t *testing.T) {
	tok := token.Token{
		Kind: token.KwStruct,
		Leading: []token.Trivia{
			{Kind: token.TriviaLineComment, Text: "// first"},
			{Kind: token.TriviaNewline, Text: "\n\n"},
			{Kind: token.TriviaLineComment, Text: "// second"},
			{Kind: token.TriviaNewline, Text: "\n"},
		},
	}
	if got := tok.LeadingComment(); got != "first\nsecond" {
		t.Errorf("LeadingComment = %q, want lines joined across the blank line", got)
	}
}

func TestLeadingCommentEmpty(t *testing.T) {
	tok := token.Token{Kind: token.Ident}
	if got := tok.LeadingComment(); got != "" {
		t.Errorf("LeadingComment = %q, want empty", got)
	}
}
