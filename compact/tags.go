// Package compact implements the Thrift compact protocol: zig-zag varints
// for signed scalars, raw (non-zig-zag) varints for lengths/counts/sequence
// numbers, a per-struct field-id delta stack, and a single-byte bool-field
// elision rule (spec.md §4.4).
package compact

import (
	"fmt"

	"github.com/twire/twire"
)

// Scalar nibble table (spec.md §4.4's "Nibble tables"). Bool has no static
// scalar nibble: its value is folded into the nibble itself (0x01 true,
// 0x02 false) wherever a Bool is framed as a field.
const (
	nibbleStop   byte = 0x00
	nibbleI8     byte = 0x03
	nibbleI16    byte = 0x04
	nibbleI32    byte = 0x05
	nibbleI64    byte = 0x06
	nibbleDouble byte = 0x07
	nibbleString byte = 0x08
	nibbleList   byte = 0x09
	nibbleSet    byte = 0x0A
	nibbleMap    byte = 0x0B
	nibbleStruct byte = 0x0C
	nibbleUuid   byte = 0x0D

	nibbleBoolTrue  byte = 0x01
	nibbleBoolFalse byte = 0x02
)

// scalarNibble returns the type nibble for every WireType except Bool,
// which callers handle specially (its nibble encodes the value).
func scalarNibble(t twire.WireType) (byte, error) {
	switch t {
	case twire.Stop:
		return nibbleStop, nil
	case twire.I8:
		return nibbleI8, nil
	case twire.I16:
		return nibbleI16, nil
	case twire.I32:
		return nibbleI32, nil
	case twire.I64:
		return nibbleI64, nil
	case twire.Double:
		return nibbleDouble, nil
	case twire.String:
		return nibbleString, nil
	case twire.List:
		return nibbleList, nil
	case twire.Set:
		return nibbleSet, nil
	case twire.Map:
		return nibbleMap, nil
	case twire.Struct:
		return nibbleStruct, nil
	case twire.Uuid:
		return nibbleUuid, nil
	default:
		return 0, invalidTypeErr(t)
	}
}

// nibbleToScalarType maps a scalar-position nibble back to a WireType. Bool
// is not reachable through this path; callers check for 0x01/0x02 first.
func nibbleToScalarType(n byte) (twire.WireType, error) {
	switch n {
	case nibbleStop:
		return twire.Stop, nil
	case nibbleI8:
		return twire.I8, nil
	case nibbleI16:
		return twire.I16, nil
	case nibbleI32:
		return twire.I32, nil
	case nibbleI64:
		return twire.I64, nil
	case nibbleDouble:
		return twire.Double, nil
	case nibbleString:
		return twire.String, nil
	case nibbleList:
		return twire.List, nil
	case nibbleSet:
		return twire.Set, nil
	case nibbleMap:
		return twire.Map, nil
	case nibbleStruct:
		return twire.Struct, nil
	case nibbleUuid:
		return twire.Uuid, nil
	default:
		return 0, invalidNibbleErr(n)
	}
}

// collectionNibble returns the type nibble used inside a list/set/map
// header. Identical to scalarNibble except Bool, which gets 0x01.
func collectionNibble(t twire.WireType) (byte, error) {
	if t == twire.Bool {
		return nibbleBoolTrue, nil
	}
	return scalarNibble(t)
}

// nibbleToCollectionType maps a collection-header nibble back to a
// WireType. Both 0x01 and 0x02 decode to Bool: the specification originally
// said 2, but widespread implementations shipped 1, and this leniency is
// load-bearing for interop (spec.md §4.1).
func nibbleToCollectionType(n byte) (twire.WireType, error) {
	if n == nibbleBoolTrue || n == nibbleBoolFalse {
		return twire.Bool, nil
	}
	return nibbleToScalarType(n)
}

func invalidNibbleErr(n byte) error {
	return &twire.Error{Kind: twire.InvalidData, Msg: fmt.Sprintf("unknown compact type nibble 0x%X", n)}
}

func invalidTypeErr(t twire.WireType) error {
	return &twire.Error{Kind: twire.Unknown, Msg: fmt.Sprintf("wire type %s has no compact nibble", t)}
}

// MinSerializedSize is the smallest number of wire bytes a value of this
// WireType can occupy in the compact protocol: 1 byte for every
// varint-encoded scalar type, 8 for Double, 16 for Uuid (spec.md §4.2).
func MinSerializedSize(t twire.WireType) int64 {
	switch t {
	case twire.Stop, twire.Void, twire.Struct:
		return 0
	case twire.Double:
		return 8
	case twire.Uuid:
		return 16
	default:
		return 1
	}
}
