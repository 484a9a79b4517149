package binary

import (
	"fmt"

	"github.com/twire/twire"
)

func invalidTagErr(b byte) error {
	return &twire.Error{Kind: twire.InvalidData, Msg: fmt.Sprintf("unknown binary type tag 0x%02X", b)}
}

func invalidTypeErr(t twire.WireType) error {
	return &twire.Error{Kind: twire.Unknown, Msg: fmt.Sprintf("wire type %s has no binary tag", t)}
}
