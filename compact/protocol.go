package compact

import (
	"encoding/binary"
	"math"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

const (
	compactProtocolID byte = 0x82
	compactVersion    byte = 0x01
)

// Encoder writes the Thrift compact protocol onto a transport.Transport.
// Besides the shared recursion-depth counter it tracks, per open struct, the
// last field id written (for delta encoding) and a single pending bool
// field awaiting its value (spec.md §4.4).
type Encoder struct {
	t      transport.Transport
	rich   transport.RichTransport
	cfg    twire.Config
	depth  int64
	lastID []int16

	pendingField *twire.FieldID
}

// NewEncoder constructs a compact Encoder.
func NewEncoder(t transport.Transport, cfg twire.Config) *Encoder {
	e := &Encoder{t: t, cfg: cfg}
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

func (e *Encoder) checkNoPendingBool() {
	if e.pendingField != nil {
		panic("compact: WriteBool was never called for a pending bool field")
	}
}

func (e *Encoder) WriteMessageBegin(m twire.MessageID) error {
	if err := e.writeByte(compactProtocolID); err != nil {
		return err
	}
	if err := e.writeByte((byte(m.Kind) << 5) | compactVersion); err != nil {
		return err
	}
	if err := e.writeRawU32(m.Sequence); err != nil {
		return err
	}
	return e.WriteString(m.Name)
}

func (e *Encoder) WriteMessageEnd() error {
	e.checkNoPendingBool()
	return nil
}

func (e *Encoder) WriteStructBegin() error {
	if err := twire.CheckRecursionDepth(e.cfg, e.depth); err != nil {
		return err
	}
	e.depth++
	e.lastID = append(e.lastID, 0)
	return nil
}

func (e *Encoder) WriteStructEnd() error {
	e.checkNoPendingBool()
	e.depth--
	e.lastID = e.lastID[:len(e.lastID)-1]
	return nil
}

func (e *Encoder) writeFieldHeader(id int16, nibble byte) error {
	top := len(e.lastID) - 1
	last := e.lastID[top]
	delta := int32(id) - int32(last)
	if delta > 0 && delta <= 15 {
		if err := e.writeByte(byte(delta<<4) | nibble); err != nil {
			return err
		}
	} else {
		if err := e.writeByte(nibble); err != nil {
			return err
		}
		if err := e.writeZigzag16(id); err != nil {
			return err
		}
	}
	e.lastID[top] = id
	return nil
}

func (e *Encoder) WriteFieldBegin(f twire.FieldID) error {
	if f.Type == twire.Stop {
		e.checkNoPendingBool()
		return e.writeByte(nibbleStop)
	}
	if !f.Set {
		return &twire.Error{Kind: twire.Unknown, Msg: "WriteFieldBegin: non-Stop field written with no id set"}
	}
	if f.Type == twire.Bool {
		e.pendingField = &f
		return nil
	}
	nibble, err := scalarNibble(f.Type)
	if err != nil {
		return err
	}
	return e.writeFieldHeader(f.ID, nibble)
}

func (e *Encoder) WriteFieldEnd() error {
	e.checkNoPendingBool()
	return nil
}

func (e *Encoder) WriteFieldStop() error { return e.WriteFieldBegin(twire.StopField) }

func (e *Encoder) writeCollectionHeader(elemType twire.WireType, size int32) error {
	nibble, err := collectionNibble(elemType)
	if err != nil {
		return err
	}
	if size >= 0 && size <= 14 {
		return e.writeByte(byte(size<<4) | nibble)
	}
	if err := e.writeByte(0xF0 | nibble); err != nil {
		return err
	}
	return e.writeRawU32(size)
}

func (e *Encoder) WriteListBegin(h twire.ListHeader) error { return e.writeCollectionHeader(h.ElementType, h.Size) }
func (e *Encoder) WriteListEnd() error                     { return nil }
func (e *Encoder) WriteSetBegin(h twire.ListHeader) error  { return e.writeCollectionHeader(h.ElementType, h.Size) }
func (e *Encoder) WriteSetEnd() error                      { return nil }

func (e *Encoder) WriteMapBegin(h twire.MapHeader) error {
	if err := e.writeRawU32(h.Size); err != nil {
		return err
	}
	if h.Size == 0 {
		return nil
	}
	kNibble, err := collectionNibble(h.KeyType)
	if err != nil {
		return err
	}
	vNibble, err := collectionNibble(h.ValueType)
	if err != nil {
		return err
	}
	return e.writeByte((kNibble << 4) | vNibble)
}

func (e *Encoder) WriteMapEnd() error { return nil }

func (e *Encoder) WriteBool(b bool) error {
	nibble := nibbleBoolFalse
	if b {
		nibble = nibbleBoolTrue
	}
	if e.pendingField != nil {
		f := *e.pendingField
		e.pendingField = nil
		return e.writeFieldHeader(f.ID, nibble)
	}
	return e.writeByte(nibble)
}

func (e *Encoder) WriteByte(b byte) error { return e.writeByte(b) }
func (e *Encoder) WriteI8(v int8) error   { return e.writeByte(byte(v)) }
func (e *Encoder) WriteI16(v int16) error { return e.writeZigzag16(v) }
func (e *Encoder) WriteI32(v int32) error { return e.writeZigzag32(v) }
func (e *Encoder) WriteI64(v int64) error { return e.writeZigzag64(v) }

func (e *Encoder) WriteDouble(v float64) error {
	if e.rich != nil {
		if err := e.rich.WriteDoubleLE(v); err != nil {
			return twire.WrapTransport(err)
		}
		return nil
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return e.writeAll(b[:])
}

func (e *Encoder) WriteUUID(u [16]byte) error { return e.writeAll(u[:]) }

func (e *Encoder) WriteBytes(b []byte) error {
	if err := e.writeRawU32(int32(len(b))); err != nil {
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
