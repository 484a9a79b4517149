// Package factory builds Encoder/Decoder pairs over a transport, the way a
// ProtocolFactory does in a generated Thrift client: callers hold onto a
// factory and mint fresh codec pairs per connection/request instead of
// wiring up binary or compact package internals by hand.
package factory

import (
	"github.com/twire/twire"
	"github.com/twire/twire/binary"
	"github.com/twire/twire/compact"
	"github.com/twire/twire/transport"
)

// ProtocolFactory mints an Encoder and Decoder sharing one transport and
// configuration. Both Thrift protocols support it.
type ProtocolFactory interface {
	NewEncoder(t transport.Transport, cfg twire.Config) twire.Encoder
	NewDecoder(t transport.Transport, cfg twire.Config) twire.Decoder
}

// BinaryProtocolFactory builds binary protocol codecs.
// NewBinaryProtocolFactory sets Strict to true; a zero-value
// BinaryProtocolFactory is non-strict. New code should write versioned
// message headers unless it needs to interoperate with a pre-versioning peer.
type BinaryProtocolFactory struct {
	Strict bool
}

// NewBinaryProtocolFactory returns a strict binary protocol factory.
func NewBinaryProtocolFactory() *BinaryProtocolFactory {
	return &BinaryProtocolFactory{Strict: true}
}

func (f *BinaryProtocolFactory) NewEncoder(t transport.Transport, cfg twire.Config) twire.Encoder {
	return binary.NewEncoder(t, cfg, f.Strict)
}

func (f *BinaryProtocolFactory) NewDecoder(t transport.Transport, cfg twire.Config) twire.Decoder {
	return binary.NewDecoder(t, cfg, f.Strict)
}

var _ ProtocolFactory = (*BinaryProtocolFactory)(nil)

// CompactProtocolFactory builds compact protocol codecs.
type CompactProtocolFactory struct{}

// NewCompactProtocolFactory returns a compact protocol factory.
func NewCompactProtocolFactory() *CompactProtocolFactory { return &CompactProtocolFactory{} }

func (f *CompactProtocolFactory) NewEncoder(t transport.Transport, cfg twire.Config) twire.Encoder {
	return compact.NewEncoder(t, cfg)
}

func (f *CompactProtocolFactory) NewDecoder(t transport.Transport, cfg twire.Config) twire.Decoder {
	return compact.NewDecoder(t, cfg)
}

var _ ProtocolFactory = (*CompactProtocolFactory)(nil)
