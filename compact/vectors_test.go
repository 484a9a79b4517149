package compact

import (
	"bytes"
	"math"
	"testing"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

// Reference vector 5: Compact Call "foo" seq=431.
func TestVectorCompactCall(t *testing.T) {
	want := []byte{0x82, 0x21, 0xAF, 0x03, 0x03, 'f', 'o', 'o'}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteMessageBegin(twire.MessageID{Name: "foo", Kind: twire.Call, Sequence: 431}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}

	dec := NewDecoder(transport.NewMemTransportFrom(want), twire.NoLimits())
	msg, err := dec.ReadMessageBegin()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg != (twire.MessageID{Name: "foo", Kind: twire.Call, Sequence: 431}) {
		t.Fatalf("got %+v", msg)
	}
}

// Reference vector 6: Compact Reply "bar" seq=math.MinInt32.
func TestVectorCompactReply(t *testing.T) {
	want := []byte{0x82, 0x41, 0x80, 0x80, 0x80, 0x80, 0x08, 0x03, 'b', 'a', 'r'}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteMessageBegin(twire.MessageID{Name: "bar", Kind: twire.Reply, Sequence: math.MinInt32}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}

	dec := NewDecoder(transport.NewMemTransportFrom(want), twire.NoLimits())
	msg, err := dec.ReadMessageBegin()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg != (twire.MessageID{Name: "bar", Kind: twire.Reply, Sequence: math.MinInt32}) {
		t.Fatalf("got %+v", msg)
	}
}

// Reference vector 7: struct with short field deltas (I8 id=0, I16 id=4,
// List id=9, stop).
func TestVectorFieldDeltas(t *testing.T) {
	want := []byte{0x03, 0x00, 0x44, 0x59, 0x00}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	_ = enc.WriteStructBegin()
	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.I8, ID: 0, Set: true})
	_ = enc.WriteFieldEnd()
	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.I16, ID: 4, Set: true})
	_ = enc.WriteFieldEnd()
	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.List, ID: 9, Set: true})
	_ = enc.WriteFieldEnd()
	_ = enc.WriteFieldStop()
	_ = enc.WriteStructEnd()

	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}

// Reference vector 8: struct with long field ids (I32 id=0, I64 id=16, Set
// id=99, stop).
func TestVectorFieldLongIDs(t *testing.T) {
	want := []byte{0x05, 0x00, 0x06, 0x20, 0x0A, 0xC6, 0x01, 0x00}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	_ = enc.WriteStructBegin()
	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.I32, ID: 0, Set: true})
	_ = enc.WriteFieldEnd()
	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.I64, ID: 16, Set: true})
	_ = enc.WriteFieldEnd()
	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.Set, ID: 99, Set: true})
	_ = enc.WriteFieldEnd()
	_ = enc.WriteFieldStop()
	_ = enc.WriteStructEnd()

	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}

// Reference vector 9: bool fields (id=1 true, id=9 false, id=26 true,
// id=45 false, stop).
func TestVectorBoolFields(t *testing.T) {
	want := []byte{0x11, 0x82, 0x01, 0x34, 0x02, 0x5A, 0x00}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	_ = enc.WriteStructBegin()

	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.Bool, ID: 1, Set: true})
	_ = enc.WriteBool(true)
	_ = enc.WriteFieldEnd()

	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.Bool, ID: 9, Set: true})
	_ = enc.WriteBool(false)
	_ = enc.WriteFieldEnd()

	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.Bool, ID: 26, Set: true})
	_ = enc.WriteBool(true)
	_ = enc.WriteFieldEnd()

	_ = enc.WriteFieldBegin(twire.FieldID{Type: twire.Bool, ID: 45, Set: true})
	_ = enc.WriteBool(false)
	_ = enc.WriteFieldEnd()

	_ = enc.WriteFieldStop()
	_ = enc.WriteStructEnd()

	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}

// Reference vector 10: list of I64, size=4.
func TestVectorListHeader(t *testing.T) {
	want := byte(0x46)

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteListBegin(twire.ListHeader{ElementType: twire.I64, Size: 4}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Bytes(); len(got) != 1 || got[0] != want {
		t.Fatalf("got % X want %X", got, want)
	}
}

// Reference vector 11: large list, size=9999.
func TestVectorLargeListHeader(t *testing.T) {
	want := []byte{0xF9, 0x8F, 0x4E}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteListBegin(twire.ListHeader{ElementType: twire.List, Size: 9999}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}

// Reference vector 12: empty map.
func TestVectorEmptyMap(t *testing.T) {
	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteMapBegin(twire.MapHeader{Size: 0}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Bytes(); len(got) != 1 || got[0] != 0x00 {
		t.Fatalf("got % X", got)
	}
}

// Reference vector 13: map Double->String, size=238.
func TestVectorMapHeader(t *testing.T) {
	want := []byte{0xEE, 0x01, 0x78}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteMapBegin(twire.MapHeader{KeyType: twire.Double, ValueType: twire.String, Size: 238}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}

// Reference vector 14: double pi, little-endian IEEE-754.
func TestVectorDoublePi(t *testing.T) {
	want := []byte{0x18, 0x2D, 0x44, 0x54, 0xFB, 0x21, 0x09, 0x40}

	tr := transport.NewMemTransport()
	enc := NewEncoder(tr, twire.NoLimits())
	if err := enc.WriteDouble(math.Pi); err != nil {
		t.Fatal(err)
	}
	if got := tr.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}

	dec := NewDecoder(transport.NewMemTransportFrom(want), twire.NoLimits())
	if v, err := dec.ReadDouble(); err != nil || v != math.Pi {
		t.Fatalf("got %v %v", v, err)
	}
}

// ∀ seq ∈ [math.MinInt32, math.MaxInt32] sampled: sequence round-trips.
func TestSequenceRoundTripSample(t *testing.T) {
	for _, seq := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32, 431} {
		tr := transport.NewMemTransport()
		enc := NewEncoder(tr, twire.NoLimits())
		_ = enc.WriteMessageBegin(twire.MessageID{Name: "s", Kind: twire.Call, Sequence: seq})
		dec := NewDecoder(transport.NewMemTransportFrom(tr.Bytes()), twire.NoLimits())
		msg, err := dec.ReadMessageBegin()
		if err != nil || msg.Sequence != seq {
			t.Fatalf("seq %d: got %d %v", seq, msg.Sequence, err)
		}
	}
}
