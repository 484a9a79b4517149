package twire

// Encoder is the flat, paired-operation write interface both the binary and
// compact codecs implement. Every *Begin has a matching *End; ends of
// zero-framing constructs perform only state updates, never I/O (Flush is
// the exception: separate, idempotent, and not implied by WriteMessageEnd).
type Encoder interface {
	WriteMessageBegin(MessageID) error
	WriteMessageEnd() error

	WriteStructBegin() error
	WriteStructEnd() error

	WriteFieldBegin(FieldID) error
	WriteFieldEnd() error
	WriteFieldStop() error

	WriteListBegin(ListHeader) error
	WriteListEnd() error
	WriteSetBegin(ListHeader) error
	WriteSetEnd() error
	WriteMapBegin(MapHeader) error
	WriteMapEnd() error

	WriteBool(bool) error
	WriteByte(byte) error
	WriteI8(int8) error
	WriteI16(int16) error
	WriteI32(int32) error
	WriteI64(int64) error
	WriteDouble(float64) error
	WriteUUID([16]byte) error
	WriteString(string) error
	WriteBytes([]byte) error

	Flush() error
}

// Decoder is the flat, paired-operation read interface both codecs
// implement. It yields the same sequence of *Begin values an Encoder was
// fed, with FieldID.Name always empty.
type Decoder interface {
	ReadMessageBegin() (MessageID, error)
	ReadMessageEnd() error

	ReadStructBegin() error
	ReadStructEnd() error

	ReadFieldBegin() (FieldID, error)
	ReadFieldEnd() error

	ReadListBegin() (ListHeader, error)
	ReadListEnd() error
	ReadSetBegin() (ListHeader, error)
	ReadSetEnd() error
	ReadMapBegin() (MapHeader, error)
	ReadMapEnd() error

	ReadBool() (bool, error)
	ReadByte() (byte, error)
	ReadI8() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadDouble() (float64, error)
	ReadUUID() ([16]byte, error)
	ReadString() (string, error)
	ReadBytes() ([]byte, error)
}
