package twire

// WireType enumerates the abstract wire types both codecs can carry. Its
// numeric value has no wire meaning of its own — each codec maps it to its
// own single-byte tag (see binary.TagFor and the compact package's nibble
// tables).
type WireType uint8

const (
	Stop WireType = iota
	Void
	Bool
	I8
	I16
	I32
	I64
	Double
	String
	Struct
	Map
	Set
	List
	Uuid
)

func (t WireType) String() string {
	switch t {
	case Stop:
		return "Stop"
	case Void:
		return "Void"
	case Bool:
		return "Bool"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case Double:
		return "Double"
	case String:
		return "String"
	case Struct:
		return "Struct"
	case Map:
		return "Map"
	case Set:
		return "Set"
	case List:
		return "List"
	case Uuid:
		return "Uuid"
	default:
		return "WireType(?)"
	}
}
