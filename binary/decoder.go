package binary

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

// Decoder reads the Thrift binary protocol from a transport.Transport. Its
// only mutable state beyond the transport is a recursion-depth counter and
// a per-message byte budget; strict is fixed at construction.
type Decoder struct {
	t      transport.Transport
	rich   transport.RichTransport
	cfg    twire.Config
	strict bool
	depth  int64
	budget *twire.Budget
}

// NewDecoder constructs a binary Decoder. strict controls how a
// version-less 4-byte message header is treated: if the incoming header's
// high bit is clear and strict is true, ReadMessageBegin fails with
// BadVersion.
func NewDecoder(t transport.Transport, cfg twire.Config, strict bool) *Decoder {
	d := &Decoder{t: t, cfg: cfg, strict: strict, budget: twire.NewBudget(cfg)}
	if rt, ok := t.(transport.RichTransport); ok {
		d.rich = rt
	}
	return d
}

var _ twire.Decoder = (*Decoder)(nil)

func (d *Decoder) readExact(buf []byte) error {
	if err := d.t.ReadExact(buf); err != nil {
		return twire.WrapTransport(err)
	}
	d.budget.Consume(int64(len(buf)))
	return nil
}

func (d *Decoder) readByte() (byte, error) {
	var b [1]byte
	if err := d.readExact(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) readI16() (int16, error) {
	if d.rich != nil {
		v, err := d.rich.ReadI16BE()
		if err != nil {
			return 0, twire.WrapTransport(err)
		}
		d.budget.Consume(2)
		return v, nil
	}
	var b [2]byte
	if err := d.readExact(b[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[:])), nil
}

func (d *Decoder) readI32() (int32, error) {
	if d.rich != nil {
		v, err := d.rich.ReadI32BE()
		if err != nil {
			return 0, twire.WrapTransport(err)
		}
		d.budget.Consume(4)
		return v, nil
	}
	var b [4]byte
	if err := d.readExact(b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (d *Decoder) readI64() (int64, error) {
	if d.rich != nil {
		v, err := d.rich.ReadI64BE()
		if err != nil {
			return 0, twire.WrapTransport(err)
		}
		d.budget.Consume(8)
		return v, nil
	}
	var b [8]byte
	if err := d.readExact(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (d *Decoder) ReadMessageBegin() (twire.MessageID, error) {
	var hdr [4]byte
	if err := d.readExact(hdr[:]); err != nil {
		return twire.MessageID{}, err
	}

	if hdr[0]&versionHiByte != 0 {
		if hdr[0] != versionHiByte || hdr[1] != versionLoByte {
			return twire.MessageID{}, d.badVersion(hdr[0])
		}
		kind := twire.MessageKind(hdr[3])
		name, err := d.ReadString()
		if err != nil {
			return twire.MessageID{}, err
		}
		seq, err := d.readI32()
		if err != nil {
			return twire.MessageID{}, err
		}
		d.budget = twire.NewBudget(d.cfg)
		return twire.MessageID{Name: name, Kind: kind, Sequence: seq}, nil
	}

	if d.strict {
		return twire.MessageID{}, d.badVersion(hdr[0])
	}

	// non-strict: hdr is the big-endian i32 length prefix of the name.
	nameLen := int32(binary.BigEndian.Uint32(hdr[:]))
	name, err := d.readBytesOfLen(nameLen)
	if err != nil {
		return twire.MessageID{}, err
	}
	kindB, err := d.readByte()
	if err != nil {
		return twire.MessageID{}, err
	}
	seq, err := d.readI32()
	if err != nil {
		return twire.MessageID{}, err
	}
	d.budget = twire.NewBudget(d.cfg)
	return twire.MessageID{Name: string(name), Kind: twire.MessageKind(kindB), Sequence: seq}, nil
}

func (d *Decoder) badVersion(got byte) error {
	hooks := d.cfg.Hooks
	if hooks == nil {
		hooks = twire.NopHooks{}
	}
	hooks.BadVersionSeen(got)
	return &twire.Error{Kind: twire.BadVersion, Msg: "unrecognized binary protocol version header"}
}

func (d *Decoder) ReadMessageEnd() error { return nil }

func (d *Decoder) ReadStructBegin() error {
	if err := twire.CheckRecursionDepth(d.cfg, d.depth); err != nil {
		return err
	}
	d.depth++
	return nil
}

func (d *Decoder) ReadStructEnd() error {
	d.depth--
	return nil
}

func (d *Decoder) ReadFieldBegin() (twire.FieldID, error) {
	tag, err := d.readByte()
	if err != nil {
		return twire.FieldID{}, err
	}
	if tag == tagStop {
		return twire.StopField, nil
	}
	wt, err := WireTypeFor(tag)
	if err != nil {
		return twire.FieldID{}, err
	}
	id, err := d.readI16()
	if err != nil {
		return twire.FieldID{}, err
	}
	return twire.FieldID{Type: wt, ID: id, Set: true}, nil
}

func (d *Decoder) ReadFieldEnd() error { return nil }

func (d *Decoder) readListLike() (twire.ListHeader, error) {
	tag, err := d.readByte()
	if err != nil {
		return twire.ListHeader{}, err
	}
	elemType, err := WireTypeFor(tag)
	if err != nil {
		return twire.ListHeader{}, err
	}
	size, err := d.readI32()
	if err != nil {
		return twire.ListHeader{}, err
	}
	if err := twire.CheckContainerSize(d.cfg, int64(size), MinSerializedSize(elemType), d.budget.Remaining()); err != nil {
		return twire.ListHeader{}, err
	}
	return twire.ListHeader{ElementType: elemType, Size: size}, nil
}

func (d *Decoder) ReadListBegin() (twire.ListHeader, error) { return d.readListLike() }
func (d *Decoder) ReadListEnd() error                       { return nil }
func (d *Decoder) ReadSetBegin() (twire.ListHeader, error)  { return d.readListLike() }
func (d *Decoder) ReadSetEnd() error                        { return nil }

func (d *Decoder) ReadMapBegin() (twire.MapHeader, error) {
	kTag, err := d.readByte()
	if err != nil {
		return twire.MapHeader{}, err
	}
	keyType, err := WireTypeFor(kTag)
	if err != nil {
		return twire.MapHeader{}, err
	}
	vTag, err := d.readByte()
	if err != nil {
		return twire.MapHeader{}, err
	}
	valType, err := WireTypeFor(vTag)
	if err != nil {
		return twire.MapHeader{}, err
	}
	size, err := d.readI32()
	if err != nil {
		return twire.MapHeader{}, err
	}
	minElem := MinSerializedSize(keyType) + MinSerializedSize(valType)
	if err := twire.CheckContainerSize(d.cfg, int64(size), minElem, d.budget.Remaining()); err != nil {
		return twire.MapHeader{}, err
	}
	return twire.MapHeader{KeyType: keyType, ValueType: valType, HasTypes: true, Size: size}, nil
}

func (d *Decoder) ReadMapEnd() error { return nil }

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (d *Decoder) ReadByte() (byte, error) { return d.readByte() }

func (d *Decoder) ReadI8() (int8, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

func (d *Decoder) ReadI16() (int16, error) { return d.readI16() }
func (d *Decoder) ReadI32() (int32, error) { return d.readI32() }
func (d *Decoder) ReadI64() (int64, error) { return d.readI64() }

func (d *Decoder) ReadDouble() (float64, error) {
	if d.rich != nil {
		v, err := d.rich.ReadDoubleBE()
		if err != nil {
			return 0, twire.WrapTransport(err)
		}
		d.budget.Consume(8)
		return v, nil
	}
	bits, err := d.readI64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

func (d *Decoder) ReadUUID() ([16]byte, error) {
	var u [16]byte
	if err := d.readExact(u[:]); err != nil {
		return u, err
	}
	return u, nil
}

func (d *Decoder) readBytesOfLen(length int32) ([]byte, error) {
	if length < 0 {
		return nil, &twire.Error{Kind: twire.NegativeSize, Msg: "negative string length"}
	}
	if err := twire.CheckStringSize(d.cfg, int64(length), d.budget.Remaining()); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if length > 0 {
		if err := d.readExact(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (d *Decoder) ReadBytes() ([]byte, error) {
	length, err := d.readI32()
	if err != nil {
		return nil, err
	}
	return d.readBytesOfLen(length)
}

func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &twire.Error{Kind: twire.InvalidData, Msg: "string is not valid UTF-8"}
	}
	return string(b), nil
}
