package compact

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/twire/twire"
	"github.com/twire/twire/transport"
)

// Decoder reads the Thrift compact protocol from a transport.Transport. It
// mirrors Encoder's per-struct last-field-id stack and adds a single
// pending-bool slot set by ReadFieldBegin and drained by the next ReadBool.
type Decoder struct {
	t      transport.Transport
	rich   transport.RichTransport
	cfg    twire.Config
	depth  int64
	budget *twire.Budget
	lastID []int16

	hasPendingBool bool
	pendingBool    bool
}

// NewDecoder constructs a compact Decoder.
func NewDecoder(t transport.Transport, cfg twire.Config) *Decoder {
	d := &Decoder{t: t, cfg: cfg, budget: twire.NewBudget(cfg)}
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

func (d *Decoder) badVersion(got byte) error {
	hooks := d.cfg.Hooks
	if hooks == nil {
		hooks = twire.NopHooks{}
	}
	hooks.BadVersionSeen(got)
	return &twire.Error{Kind: twire.BadVersion, Msg: "unrecognized compact protocol header"}
}

func (d *Decoder) ReadMessageBegin() (twire.MessageID, error) {
	pid, err := d.readByte()
	if err != nil {
		return twire.MessageID{}, err
	}
	if pid != compactProtocolID {
		return twire.MessageID{}, d.badVersion(pid)
	}
	b, err := d.readByte()
	if err != nil {
		return twire.MessageID{}, err
	}
	if b&0x1F != compactVersion {
		return twire.MessageID{}, d.badVersion(b)
	}
	kind := twire.MessageKind(b >> 5)
	seq, err := d.readRawU32()
	if err != nil {
		return twire.MessageID{}, err
	}
	name, err := d.ReadString()
	if err != nil {
		return twire.MessageID{}, err
	}
	d.budget = twire.NewBudget(d.cfg)
	return twire.MessageID{Name: name, Kind: kind, Sequence: seq}, nil
}

func (d *Decoder) ReadMessageEnd() error { return nil }

func (d *Decoder) ReadStructBegin() error {
	if err := twire.CheckRecursionDepth(d.cfg, d.depth); err != nil {
		return err
	}
	d.depth++
	d.lastID = append(d.lastID, 0)
	return nil
}

func (d *Decoder) ReadStructEnd() error {
	d.depth--
	d.lastID = d.lastID[:len(d.lastID)-1]
	return nil
}

func (d *Decoder) ReadFieldBegin() (twire.FieldID, error) {
	header, err := d.readByte()
	if err != nil {
		return twire.FieldID{}, err
	}
	if header == nibbleStop {
		return twire.StopField, nil
	}

	nibble := header & 0x0F
	deltaNibble := header >> 4

	top := len(d.lastID) - 1
	var id int16
	if deltaNibble == 0 {
		zz, err := d.readZigzag16()
		if err != nil {
			return twire.FieldID{}, err
		}
		id = zz
	} else {
		id = d.lastID[top] + int16(deltaNibble)
	}
	d.lastID[top] = id

	if nibble == nibbleBoolTrue || nibble == nibbleBoolFalse {
		d.hasPendingBool = true
		d.pendingBool = nibble == nibbleBoolTrue
		return twire.FieldID{Type: twire.Bool, ID: id, Set: true}, nil
	}

	wt, err := nibbleToScalarType(nibble)
	if err != nil {
		return twire.FieldID{}, err
	}
	return twire.FieldID{Type: wt, ID: id, Set: true}, nil
}

func (d *Decoder) ReadFieldEnd() error { return nil }

func (d *Decoder) readListLike() (twire.ListHeader, error) {
	header, err := d.readByte()
	if err != nil {
		return twire.ListHeader{}, err
	}
	nibble := header & 0x0F
	sizeNibble := header >> 4

	var size int32
	if sizeNibble == 0x0F {
		size, err = d.readRawU32()
		if err != nil {
			return twire.ListHeader{}, err
		}
	} else {
		size = int32(sizeNibble)
	}

	elemType, err := nibbleToCollectionType(nibble)
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
	size, err := d.readRawU32()
	if err != nil {
		return twire.MapHeader{}, err
	}
	if size == 0 {
		return twire.MapHeader{}, nil
	}
	if size < 0 {
		return twire.MapHeader{}, &twire.Error{Kind: twire.NegativeSize, Msg: "negative map size"}
	}

	typeByte, err := d.readByte()
	if err != nil {
		return twire.MapHeader{}, err
	}
	keyType, err := nibbleToCollectionType(typeByte >> 4)
	if err != nil {
		return twire.MapHeader{}, err
	}
	valType, err := nibbleToCollectionType(typeByte & 0x0F)
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
	if d.hasPendingBool {
		v := d.pendingBool
		d.hasPendingBool = false
		return v, nil
	}
	b, err := d.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00, nibbleBoolFalse:
		return false, nil
	case nibbleBoolTrue:
		return true, nil
	default:
		return false, &twire.Error{Kind: twire.InvalidData, Msg: "bool byte outside {0,1,2}"}
	}
}

func (d *Decoder) ReadByte() (byte, error) { return d.readByte() }

func (d *Decoder) ReadI8() (int8, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

func (d *Decoder) ReadI16() (int16, error) { return d.readZigzag16() }
func (d *Decoder) ReadI32() (int32, error) { return d.readZigzag32() }
func (d *Decoder) ReadI64() (int64, error) { return d.readZigzag64() }

func (d *Decoder) ReadDouble() (float64, error) {
	if d.rich != nil {
		v, err := d.rich.ReadDoubleLE()
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
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
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
	length, err := d.readRawU32()
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
