package ast

// PrimKind enumerates the built-in field types. Unsigned integers are
// deliberately absent: not every target language can represent them safely.
type PrimKind uint8

const (
	PrimNone PrimKind = iota
	PrimInt8
	PrimInt16
	PrimInt32
	PrimInt64
	PrimByte
	PrimFloat
	PrimDouble
	PrimBoolean
	PrimString
)

var primNames = map[string]PrimKind{
	"int8_t":  PrimInt8,
	"int16_t": PrimInt16,
	"int32_t": PrimInt32,
	"int64_t": PrimInt64,
	"byte":    PrimByte,
	"float":   PrimFloat,
	"double":  PrimDouble,
	"boolean": PrimBoolean,
	"string":  PrimString,
}

// LookupPrimitive recognizes the reserved primitive type names. Any other
// identifier used as a type stays an unresolved name for the resolver.
func LookupPrimitive(name string) (PrimKind, bool) {
	k, ok := primNames[name]
	return k, ok
}

func (p PrimKind) String() string {
	switch p {
	case PrimInt8:
		return "int8_t"
	case PrimInt16:
		return "int16_t"
	case PrimInt32:
		return "int32_t"
	case PrimInt64:
		return "int64_t"
	case PrimByte:
		return "byte"
	case PrimFloat:
		return "float"
	case PrimDouble:
		return "double"
	case PrimBoolean:
		return "boolean"
	case PrimString:
		return "string"
	}
	return ""
}

// IsIntegral reports whether the primitive can size an array dimension.
func (p PrimKind) IsIntegral() bool {
	switch p {
	case PrimInt8, PrimInt16, PrimInt32, PrimInt64:
		return true
	default:
		return false
	}
}

// IsConstable reports whether the primitive can type an inline constant.
func (p PrimKind) IsConstable() bool {
	switch p {
	case PrimInt8, PrimInt16, PrimInt32, PrimInt64, PrimFloat, PrimDouble:
		return true
	default:
		return false
	}
}

// IntBounds returns the inclusive value range for integral primitives.
func (p PrimKind) IntBounds() (lo, hi int64, ok bool) {
	switch p {
	case PrimInt8:
		return -128, 127, true
	case PrimInt16:
		return -32768, 32767, true
	case PrimInt32:
		return -2147483648, 2147483647, true
	case PrimInt64:
		return -9223372036854775808, 9223372036854775807, true
	default:
		return 0, 0, false
	}
}
