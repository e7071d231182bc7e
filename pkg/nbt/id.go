package nbt

import "fmt"

// ID is the one-byte discriminator that identifies a tag variant on the wire.
// The built-in range is 0–12; ids above that are available for custom tags
// registered through [Registry.Register].
type ID byte

// Built-in tag ids. The values are fixed by the wire format and must never
// change: every serialized stream encodes them directly.
const (
	IDEnd ID = iota // terminator sentinel, never a real entry
	IDByte
	IDShort
	IDInt
	IDLong
	IDFloat
	IDDouble
	IDByteArray
	IDString
	IDList
	IDCompound
	IDIntArray
	IDLongArray
)

// String returns the conventional name of the tag type (e.g., "TAG_Int").
// Unknown ids are formatted as "TAG_Unknown(<n>)".
func (id ID) String() string {
	switch id {
	case IDEnd:
		return "TAG_End"
	case IDByte:
		return "TAG_Byte"
	case IDShort:
		return "TAG_Short"
	case IDInt:
		return "TAG_Int"
	case IDLong:
		return "TAG_Long"
	case IDFloat:
		return "TAG_Float"
	case IDDouble:
		return "TAG_Double"
	case IDByteArray:
		return "TAG_Byte_Array"
	case IDString:
		return "TAG_String"
	case IDList:
		return "TAG_List"
	case IDCompound:
		return "TAG_Compound"
	case IDIntArray:
		return "TAG_Int_Array"
	case IDLongArray:
		return "TAG_Long_Array"
	default:
		return fmt.Sprintf("TAG_Unknown(%d)", byte(id))
	}
}
