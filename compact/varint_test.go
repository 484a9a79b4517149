package compact

import (
	"testing"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 9999, 1 << 31, 1 << 40, ^uint64(0)}
	for _, v := range values {
		tr := transport.NewMemTransport()
		enc := NewEncoder(tr, twire.NoLimits())
		if err := enc.writeUvarint(v); err != nil {
			t.Fatalf("write %d: %v", v, err)
		}
		dec := NewDecoder(transport.NewMemTransportFrom(tr.Bytes()), twire.NoLimits())
		got, err := dec.readUvarint()
		if err != nil || got != v {
			t.Fatalf("%d: got %d %v", v, got, err)
		}
	}
}

func TestVarintTooLongIsInvalidData(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	dec := NewDecoder(transport.NewMemTransportFrom(buf), twire.NoLimits())
	if _, err := dec.readUvarint(); !twire.Is(err, twire.InvalidData) {
		t.Fatalf("want InvalidData, got %v", err)
	}
}

func TestZigzagRoundTrip32(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 63, -64, 1 << 20, -(1 << 20), 2147483647, -2147483648} {
		if got := unzigzag32(zigzag32(v)); got != v {
			t.Fatalf("%d: got %d", v, got)
		}
	}
}

func TestZigzagRoundTrip64(t *testing.T) {
	for n := uint(0); n < 63; n++ {
		v := (int64(1) << n) - 1
		if got := unzigzag64(zigzag64(v)); got != v {
			t.Fatalf("n=%d v=%d: got %d", n, v, got)
		}
	}
}

func TestSequenceRoundTripFullRange(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2147483647, -2147483648, 431} {
		tr := transport.NewMemTransport()
		enc := NewEncoder(tr, twire.NoLimits())
		if err := enc.writeRawU32(v); err != nil {
			t.Fatal(err)
		}
		dec := NewDecoder(transport.NewMemTransportFrom(tr.Bytes()), twire.NoLimits())
		got, err := dec.readRawU32()
		if err != nil || got != v {
			t.Fatalf("%d: got %d %v", v, got, err)
		}
	}
}
