package token

var keywords = map[string]Kind{
	"package": KwPackage,
	"struct":  KwStruct,
	"enum":    KwEnum,
	"const":   KwConst,
}

// LookupKeyword returns the keyword kind for an identifier, if any.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
