package twire

// FieldID identifies a struct field. Name is optional and is never
// populated by a decoder. ID is required for non-Stop fields on write; a
// decoder leaves ID at its zero value and Set=false only for Stop.
type FieldID struct {
	Name string
	Type WireType
	ID   int16
	// Set reports whether ID carries a meaningful value. It is false only
	// for the Stop sentinel field.
	Set bool
}

// StopField is the sentinel field identifier written/read at struct end.
var StopField = FieldID{Type: Stop}
