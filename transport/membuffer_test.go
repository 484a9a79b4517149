package transport

import (
	"bytes"
	"math"
	"testing"
)

func TestMemTransportReadWriteExact(t *testing.T) {
	m := NewMemTransport()
	if err := m.WriteAll([]byte("hello")); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	buf := make([]byte, 5)
	if err := m.ReadExact(buf); err != nil {
		t.Fatalf("ReadExact: %v", err)
	}
	if !bytes.Equal(buf, []byte("hello")) {
		t.Fatalf("got %q", buf)
	}
}

func TestMemTransportShortRead(t *testing.T) {
	m := NewMemTransport()
	_ = m.WriteAll([]byte("ab"))
	if err := m.ReadExact(make([]byte, 5)); err == nil {
		t.Fatalf("expected short-read error")
	}
}

func TestMemTransportRichHelpers(t *testing.T) {
	m := NewMemTransport()
	if err := m.WriteI16BE(-1); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteI32BE(1 << 20); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteI64BE(math.MinInt64); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteDoubleBE(math.Pi); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteDoubleLE(math.Pi); err != nil {
		t.Fatal(err)
	}

	i16, err := m.ReadI16BE()
	if err != nil || i16 != -1 {
		t.Fatalf("got %d, %v", i16, err)
	}
	i32, err := m.ReadI32BE()
	if err != nil || i32 != 1<<20 {
		t.Fatalf("got %d, %v", i32, err)
	}
	i64, err := m.ReadI64BE()
	if err != nil || i64 != math.MinInt64 {
		t.Fatalf("got %d, %v", i64, err)
	}
	dbe, err := m.ReadDoubleBE()
	if err != nil || dbe != math.Pi {
		t.Fatalf("got %v, %v", dbe, err)
	}
	dle, err := m.ReadDoubleLE()
	if err != nil || dle != math.Pi {
		t.Fatalf("got %v, %v", dle, err)
	}
}

func TestMemTransportFromBytes(t *testing.T) {
	m := NewMemTransportFrom([]byte{0x01, 0x02})
	b, err := m.ReadI16BE()
	if err != nil {
		t.Fatal(err)
	}
	if b != 0x0102 {
		t.Fatalf("got %x", b)
	}
}
