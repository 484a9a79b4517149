package factory

import (
	"testing"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

func TestBinaryFactoryRoundTrip(t *testing.T) {
	f := NewBinaryProtocolFactory()
	tr := transport.NewMemTransport()
	enc := f.NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteMessageBegin(twire.MessageID{Name: "x", Kind: twire.Call, Sequence: 1}); err != nil {
		t.Fatal(err)
	}

	dec := f.NewDecoder(transport.NewMemTransportFrom(tr.Bytes()), twire.NoLimits())
	msg, err := dec.ReadMessageBegin()
	if err != nil || msg.Name != "x" {
		t.Fatalf("got %+v %v", msg, err)
	}
}

func TestCompactFactoryRoundTrip(t *testing.T) {
	f := NewCompactProtocolFactory()
	tr := transport.NewMemTransport()
	enc := f.NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteMessageBegin(twire.MessageID{Name: "y", Kind: twire.Reply, Sequence: 2}); err != nil {
		t.Fatal(err)
	}

	dec := f.NewDecoder(transport.NewMemTransportFrom(tr.Bytes()), twire.NoLimits())
	msg, err := dec.ReadMessageBegin()
	if err != nil || msg.Name != "y" {
		t.Fatalf("got %+v %v", msg, err)
	}
}
