package token

// Kind represents the category of a schema source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Dotted names ("pkg.sub.type_t")
	// lex as a single Ident so a qualified name never splits.
	Ident
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwConst represents the 'const' keyword.
	KwConst // const

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// Assign represents the assign punctuation token.
	Assign // =
	// Semicolon represents the semicolon punctuation token.
	Semicolon // ;
	// Comma represents the comma punctuation token.
	Comma // ,
	// LBrace represents the left brace punctuation token.
	LBrace // {
	// RBrace represents the right brace punctuation token.
	RBrace // }
	// LBracket represents the left bracket punctuation token.
	LBracket // [
	// RBracket represents the right bracket punctuation token.
	RBracket // ]
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwPackage:
		return "KwPackage"
	case KwStruct:
		return "KwStruct"
	case KwEnum:
		return "KwEnum"
	case KwConst:
		return "KwConst"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case StringLit:
		return "StringLit"
	case Assign:
		return "Assign"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	}
	return "Unknown"
}
