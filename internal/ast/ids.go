package ast

// Typed 1-based arena handles. Zero means "none".
type (
	FileID      uint32
	DeclID      uint32
	FieldID     uint32
	ConstID     uint32
	EnumValueID uint32
)

const (
	NoFileID      FileID      = 0
	NoDeclID      DeclID      = 0
	NoFieldID     FieldID     = 0
	NoConstID     ConstID     = 0
	NoEnumValueID EnumValueID = 0
)

func (id FileID) IsValid() bool      { return id != NoFileID }
func (id DeclID) IsValid() bool      { return id != NoDeclID }
func (id FieldID) IsValid() bool     { return id != NoFieldID }
func (id ConstID) IsValid() bool     { return id != NoConstID }
func (id EnumValueID) IsValid() bool { return id != NoEnumValueID }
