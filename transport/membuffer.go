package transport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MemTransport is a reference Transport/RichTransport implementation
// backed by an in-memory bytes.Buffer. It is convenient for tests: writes
// append to the buffer, reads consume from its front.
type MemTransport struct {
	buf bytes.Buffer
}

// NewMemTransport returns an empty MemTransport ready for writes, reads, or
// both (reads consume whatever has been written so far, FIFO).
func NewMemTransport() *MemTransport {
	return &MemTransport{}
}

// NewMemTransportFrom seeds a MemTransport with existing bytes, useful for
// feeding fixed reference vectors to a decoder.
func NewMemTransportFrom(b []byte) *MemTransport {
	m := &MemTransport{}
	m.buf.Write(b)
	return m
}

// Bytes returns the bytes currently buffered (written but not yet read).
func (m *MemTransport) Bytes() []byte { return m.buf.Bytes() }

func (m *MemTransport) ReadExact(buf []byte) error {
	n, err := io.ReadFull(&m.buf, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("membuffer: short read: got %d of %d bytes: %w", n, len(buf), err)
		}
		return err
	}
	return nil
}

func (m *MemTransport) WriteAll(buf []byte) error {
	_, err := m.buf.Write(buf)
	return err
}

func (m *MemTransport) Flush() error { return nil }

func (m *MemTransport) WriteI16BE(v int16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return m.WriteAll(b[:])
}

func (m *MemTransport) ReadI16BE() (int16, error) {
	var b [2]byte
	if err := m.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[:])), nil
}

func (m *MemTransport) WriteI32BE(v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return m.WriteAll(b[:])
}

func (m *MemTransport) ReadI32BE() (int32, error) {
	var b [4]byte
	if err := m.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (m *MemTransport) WriteI64BE(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return m.WriteAll(b[:])
}

func (m *MemTransport) ReadI64BE() (int64, error) {
	var b [8]byte
	if err := m.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (m *MemTransport) WriteDoubleBE(v float64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	return m.WriteAll(b[:])
}

func (m *MemTransport) ReadDoubleBE() (float64, error) {
	var b [8]byte
	if err := m.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b[:])), nil
}

func (m *MemTransport) WriteDoubleLE(v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return m.WriteAll(b[:])
}

func (m *MemTransport) ReadDoubleLE() (float64, error) {
	var b [8]byte
	if err := m.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
}

var (
	_ Transport     = (*MemTransport)(nil)
	_ RichTransport = (*MemTransport)(nil)
)
