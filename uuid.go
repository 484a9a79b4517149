package twire

import "github.com/google/uuid"

// ParseUUID parses a canonical textual UUID (e.g.
// "f47ac10b-58cc-4372-a567-0e02b2c3d479") into the 16 raw bytes the Uuid
// wire type actually carries. The codecs themselves never call this — they
// read/write [16]byte directly — this is a convenience for callers that
// hold textual UUIDs at the application layer.
func ParseUUID(s string) ([16]byte, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return [16]byte{}, newErrf(InvalidData, "invalid UUID %q: %v", s, err)
	}
	return [16]byte(u), nil
}

// UUIDString formats 16 raw UUID bytes in canonical textual form.
func UUIDString(b [16]byte) string {
	return uuid.UUID(b).String()
}
