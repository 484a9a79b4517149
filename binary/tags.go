// Package binary implements the Thrift binary protocol: big-endian
// scalars, length-prefixed strings, an explicit type-tag + i16 id per
// field, and an optional four-byte strict-mode version header on messages.
package binary

import "github.com/twire/twire"

// Tag values for the binary protocol (spec.md §4.1, cross-checked against
// the historical field_type_to_u8 table).
const (
	tagStop   byte = 0x00
	tagVoid   byte = 0x01
	tagBool   byte = 0x02
	tagI8     byte = 0x03
	tagDouble byte = 0x04
	tagI16    byte = 0x06
	tagI32    byte = 0x08
	tagI64    byte = 0x0A
	tagString byte = 0x0B // also accepted on decode as legacy Utf7; always decodes to String
	tagStruct byte = 0x0C
	tagMap    byte = 0x0D
	tagSet    byte = 0x0E
	tagList   byte = 0x0F
	tagUuid   byte = 0x10
)

// TagFor returns the single-byte binary-protocol tag for a WireType.
func TagFor(t twire.WireType) (byte, error) {
	switch t {
	case twire.Stop:
		return tagStop, nil
	case twire.Void:
		return tagVoid, nil
	case twire.Bool:
		return tagBool, nil
	case twire.I8:
		return tagI8, nil
	case twire.Double:
		return tagDouble, nil
	case twire.I16:
		return tagI16, nil
	case twire.I32:
		return tagI32, nil
	case twire.I64:
		return tagI64, nil
	case twire.String:
		return tagString, nil
	case twire.Struct:
		return tagStruct, nil
	case twire.Map:
		return tagMap, nil
	case twire.Set:
		return tagSet, nil
	case twire.List:
		return tagList, nil
	case twire.Uuid:
		return tagUuid, nil
	default:
		return 0, invalidTypeErr(t)
	}
}

// WireTypeFor maps a binary-protocol tag byte back to a WireType. Tag
// 0x0B is the sole historical ambiguity (String vs. legacy Utf7); it always
// decodes to String (spec.md §4.1's documented Open Question).
func WireTypeFor(b byte) (twire.WireType, error) {
	switch b {
	case tagStop:
		return twire.Stop, nil
	case tagVoid:
		return twire.Void, nil
	case tagBool:
		return twire.Bool, nil
	case tagI8:
		return twire.I8, nil
	case tagDouble:
		return twire.Double, nil
	case tagI16:
		return twire.I16, nil
	case tagI32:
		return twire.I32, nil
	case tagI64:
		return twire.I64, nil
	case tagString:
		return twire.String, nil
	case tagStruct:
		return twire.Struct, nil
	case tagMap:
		return twire.Map, nil
	case tagSet:
		return twire.Set, nil
	case tagList:
		return twire.List, nil
	case tagUuid:
		return twire.Uuid, nil
	default:
		return 0, invalidTagErr(b)
	}
}

// MinSerializedSize is the smallest number of wire bytes a value of this
// WireType can occupy in the binary protocol: fixed scalar widths, or the
// 4-byte length prefix for length-framed types. Used by
// twire.CheckContainerSize as a per-element lower bound, so a declared
// container cardinality can be rejected before any allocation.
func MinSerializedSize(t twire.WireType) int64 {
	switch t {
	case twire.Stop, twire.Void, twire.Struct:
		return 0
	case twire.Bool, twire.I8:
		return 1
	case twire.I16:
		return 2
	case twire.I32:
		return 4
	case twire.I64, twire.Double:
		return 8
	case twire.String, twire.Map, twire.Set, twire.List:
		return 4
	case twire.Uuid:
		return 16
	default:
		return 0
	}
}
