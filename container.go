package twire

// ListHeader identifies a list or set: its element type and declared size.
// Size is always non-negative once past CheckContainerSize.
type ListHeader struct {
	ElementType WireType
	Size        int32
}

// MapHeader identifies a map. KeyType/ValueType are only meaningful when
// HasTypes is true. The binary codec always writes/reads explicit key and
// value type tags, so its decoded MapHeader has HasTypes true regardless of
// Size. The compact codec omits the type-nibble byte for an empty map
// (spec.md §4.4: "for size==0 both types are absent on read; for size>0
// both are present"), so HasTypes is false exactly when Size == 0.
type MapHeader struct {
	KeyType   WireType
	ValueType WireType
	HasTypes  bool
	Size      int32
}
