package binary

import (
	"encoding/binary"
	"math"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

// strict-mode message header constants (spec.md §4.3). The 4-byte header
// is 0x8001_0000 | kind as a big-endian u32: bytes [0x80, 0x01, 0x00, kind].
const (
	versionHiByte byte = 0x80 // first header byte; high bit marks strict framing
	versionLoByte byte = 0x01 // second header byte
)

// Encoder writes the Thrift binary protocol onto a transport.Transport.
// It is stateless apart from a recursion-depth counter; strict is fixed at
// construction.
type Encoder struct {
	t      transport.Transport
	rich   transport.RichTransport
	cfg    twire.Config
	strict bool
	depth  int64
}

// NewEncoder constructs a binary Encoder. strict selects the four-byte
// versioned message header (spec.md §4.3).
func NewEncoder(t transport.Transport, cfg twire.Config, strict bool) *Encoder {
	e := &Encoder{t: t, cfg: cfg, strict: strict}
	if rt, ok := t.(transport.RichTransport); ok {
		e.rich = rt
	}
	return e
}

var _ twire.Encoder = (*Encoder)(nil)

func (e *Encoder) writeAll(b []byte) error {
	if err := e.t.WriteAll(b); err != nil {
		return twire.WrapTransport(err)
	}
	return nil
}

func (e *Encoder) writeByte(b byte) error { return e.writeAll([]byte{b}) }

func (e *Encoder) writeI16(v int16) error {
	if e.rich != nil {
		if err := e.rich.WriteI16BE(v); err != nil {
			return twire.WrapTransport(err)
		}
		return nil
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return e.writeAll(b[:])
}

func (e *Encoder) writeI32(v int32) error {
	if e.rich != nil {
		if err := e.rich.WriteI32BE(v); err != nil {
			return twire.WrapTransport(err)
		}
		return nil
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return e.writeAll(b[:])
}

func (e *Encoder) writeI64(v int64) error {
	if e.rich != nil {
		if err := e.rich.WriteI64BE(v); err != nil {
			return twire.WrapTransport(err)
		}
		return nil
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return e.writeAll(b[:])
}

func (e *Encoder) WriteMessageBegin(m twire.MessageID) error {
	if e.strict {
		hdr := [4]byte{versionHiByte, versionLoByte, 0x00, byte(m.Kind)}
		if err := e.writeAll(hdr[:]); err != nil {
			return err
		}
		if err := e.WriteString(m.Name); err != nil {
			return err
		}
		return e.writeI32(m.Sequence)
	}
	if err := e.WriteString(m.Name); err != nil {
		return err
	}
	if err := e.writeByte(byte(m.Kind)); err != nil {
		return err
	}
	return e.writeI32(m.Sequence)
}

func (e *Encoder) WriteMessageEnd() error { return nil }

func (e *Encoder) WriteStructBegin() error {
	if err := twire.CheckRecursionDepth(e.cfg, e.depth); err != nil {
		return err
	}
	e.depth++
	return nil
}

func (e *Encoder) WriteStructEnd() error {
	e.depth--
	return nil
}

func (e *Encoder) WriteFieldBegin(f twire.FieldID) error {
	if f.Type != twire.Stop && !f.Set {
		return &twire.Error{Kind: twire.Unknown, Msg: "WriteFieldBegin: non-Stop field written with no id set"}
	}
	tag, err := TagFor(f.Type)
	if err != nil {
		return err
	}
	if err := e.writeByte(tag); err != nil {
		return err
	}
	if f.Type == twire.Stop {
		return nil
	}
	return e.writeI16(f.ID)
}

func (e *Encoder) WriteFieldEnd() error { return nil }

func (e *Encoder) WriteFieldStop() error { return e.WriteFieldBegin(twire.StopField) }

func (e *Encoder) writeListLike(h twire.ListHeader) error {
	tag, err := TagFor(h.ElementType)
	if err != nil {
		return err
	}
	if err := e.writeByte(tag); err != nil {
		return err
	}
	return e.writeI32(h.Size)
}

func (e *Encoder) WriteListBegin(h twire.ListHeader) error { return e.writeListLike(h) }
func (e *Encoder) WriteListEnd() error                     { return nil }
func (e *Encoder) WriteSetBegin(h twire.ListHeader) error  { return e.writeListLike(h) }
func (e *Encoder) WriteSetEnd() error                      { return nil }

func (e *Encoder) WriteMapBegin(h twire.MapHeader) error {
	kTag, err := TagFor(h.KeyType)
	if err != nil {
		return err
	}
	vTag, err := TagFor(h.ValueType)
	if err != nil {
		return err
	}
	if err := e.writeByte(kTag); err != nil {
		return err
	}
	if err := e.writeByte(vTag); err != nil {
		return err
	}
	return e.writeI32(h.Size)
}

func (e *Encoder) WriteMapEnd() error { return nil }

func (e *Encoder) WriteBool(b bool) error {
	if b {
		return e.writeByte(1)
	}
	return e.writeByte(0)
}

func (e *Encoder) WriteByte(b byte) error { return e.writeByte(b) }
func (e *Encoder) WriteI8(v int8) error   { return e.writeByte(byte(v)) }
func (e *Encoder) WriteI16(v int16) error { return e.writeI16(v) }
func (e *Encoder) WriteI32(v int32) error { return e.writeI32(v) }
func (e *Encoder) WriteI64(v int64) error { return e.writeI64(v) }

func (e *Encoder) WriteDouble(v float64) error {
	if e.rich != nil {
		if err := e.rich.WriteDoubleBE(v); err != nil {
			return twire.WrapTransport(err)
		}
		return nil
	}
	return e.writeI64(int64(math.Float64bits(v)))
}

func (e *Encoder) WriteUUID(u [16]byte) error { return e.writeAll(u[:]) }

func (e *Encoder) WriteBytes(b []byte) error {
	if err := e.writeI32(int32(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return e.writeAll(b)
}

func (e *Encoder) WriteString(s string) error { return e.WriteBytes([]byte(s)) }

func (e *Encoder) Flush() error {
	if err := e.t.Flush(); err != nil {
		return twire.WrapTransport(err)
	}
	return nil
}
