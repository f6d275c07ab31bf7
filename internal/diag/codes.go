package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynUnexpectedTopLevel   Code = 2002
	SynExpectIdentifier     Code = 2003
	SynExpectSemicolon      Code = 2004
	SynExpectLBrace         Code = 2005
	SynExpectRBracket       Code = 2006
	SynInvalidMemberName    Code = 2007
	SynDuplicateMember      Code = 2008
	SynBadConstType         Code = 2009
	SynBadConstValue        Code = 2010
	SynConstOutOfRange      Code = 2011
	SynBadArraySize         Code = 2012
	SynDuplicateOrdinal     Code = 2013
	SynIntTypeSuspect       Code = 2014
	SynNestedDeclNotAllowed Code = 2015

	// Resolution
	ResInfo                  Code = 3000
	ResDuplicateType         Code = 3001
	ResUnknownType           Code = 3002
	ResUnknownDimensionField Code = 3003
	ResIllegalRecursion      Code = 3004
	ResBadDimensionType      Code = 3005

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectSemicolon:          "Expect semicolon",
	SynExpectLBrace:             "Expect opening brace",
	SynExpectRBracket:           "Expect closing bracket",
	SynInvalidMemberName:        "Invalid member name",
	SynDuplicateMember:          "Duplicate member name",
	SynBadConstType:             "Invalid type for const",
	SynBadConstValue:            "Invalid const value",
	SynConstOutOfRange:          "Const value out of range",
	SynBadArraySize:             "Invalid array size",
	SynDuplicateOrdinal:         "Duplicate enum ordinal",
	SynIntTypeSuspect:           "Suspicious integer type name",
	SynNestedDeclNotAllowed:     "Nested declaration not allowed",
	ResInfo:                     "Resolution information",
	ResDuplicateType:            "Duplicate type",
	ResUnknownType:              "Unknown type",
	ResUnknownDimensionField:    "Unknown array size field",
	ResIllegalRecursion:         "Illegal fixed-size recursion",
	ResBadDimensionType:         "Array size must be a scalar integer",
	IOLoadFileError:             "Failed to load file",
}

// ID returns the stable short identifier used in rendered diagnostics.
func (c Code) ID() string {
	return fmt.Sprintf("SGL%04d", uint16(c))
}

// Title returns the human-readable one-line description for the code.
func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
