package compact

import "github.com/twire/twire"

// maxVarintBytes bounds how many bytes readUvarint will consume before
// giving up: 10 bytes covers the full 64-bit range with room to spare, and
// rejects a malicious unbounded run of continuation bytes.
const maxVarintBytes = 10

// writeUvarint LEB128-encodes v: 7 bits per byte, high bit set on every
// byte but the last.
func (e *Encoder) writeUvarint(v uint64) error {
	var buf [maxVarintBytes]byte
	n := 0
	for v >= 0x80 {
		buf[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	buf[n] = byte(v)
	n++
	return e.writeAll(buf[:n])
}

func (d *Decoder) readUvarint() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxVarintBytes; i++ {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, &twire.Error{Kind: twire.InvalidData, Msg: "varint exceeds 10 bytes"}
}

// writeRawU32 writes v's two's-complement bit pattern as an unsigned
// varint: used for lengths, counts and sequence numbers, which are never
// zig-zag encoded (spec.md §4.4).
func (e *Encoder) writeRawU32(v int32) error { return e.writeUvarint(uint64(uint32(v))) }

func (d *Decoder) readRawU32() (int32, error) {
	v, err := d.readUvarint()
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}

// zigzag32 maps a signed i32 onto an unsigned domain so small magnitude
// negative numbers still vary int encode to few bytes.
func zigzag32(n int32) uint32 { return (uint32(n) << 1) ^ uint32(n>>31) }
func unzigzag32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }

func zigzag64(n int64) uint64   { return (uint64(n) << 1) ^ uint64(n>>63) }
func unzigzag64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }

func (e *Encoder) writeZigzag16(v int16) error { return e.writeUvarint(uint64(zigzag32(int32(v)))) }

func (d *Decoder) readZigzag16() (int16, error) {
	u, err := d.readUvarint()
	if err != nil {
		return 0, err
	}
	return int16(unzigzag32(uint32(u))), nil
}

func (e *Encoder) writeZigzag32(v int32) error { return e.writeUvarint(uint64(zigzag32(v))) }

func (d *Decoder) readZigzag32() (int32, error) {
	u, err := d.readUvarint()
	if err != nil {
		return 0, err
	}
	return unzigzag32(uint32(u)), nil
}

func (e *Encoder) writeZigzag64(v int64) error { return e.writeUvarint(zigzag64(v)) }

func (d *Decoder) readZigzag64() (int64, error) {
	u, err := d.readUvarint()
	if err != nil {
		return 0, err
	}
	return unzigzag64(u), nil
}
