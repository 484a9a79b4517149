// Package transport defines the byte-transport abstraction the twire
// codecs consume. Implementations MUST be blocking: ReadExact fills buf or
// fails, WriteAll writes every byte or fails. twire requires no seek or
// buffering guarantee beyond that.
package transport

// Transport is the minimal contract both codecs depend on. A codec half
// owns its Transport for the codec's lifetime; the Transport must outlive
// no codec instance that wraps it.
type Transport interface {
	// ReadExact fills buf completely or returns an error (typically
	// io.ErrUnexpectedEOF on short reads, or whatever the underlying
	// stream reports).
	ReadExact(buf []byte) error
	// WriteAll writes every byte of buf or returns an error.
	WriteAll(buf []byte) error
	// Flush pushes any buffered writes downstream. Idempotent; safe to
	// call with nothing pending.
	Flush() error
}

// RichTransport is an optional widening of Transport with big-endian and
// little-endian integer/float helpers. Codecs use it when a Transport also
// implements it, and fall back to manual byte assembly over plain
// ReadExact/WriteAll otherwise. None of this is required for correctness —
// it exists purely as a convenience/performance seam.
type RichTransport interface {
	Transport

	WriteI16BE(int16) error
	ReadI16BE() (int16, error)
	WriteI32BE(int32) error
	ReadI32BE() (int32, error)
	WriteI64BE(int64) error
	ReadI64BE() (int64, error)
	WriteDoubleBE(float64) error
	ReadDoubleBE() (float64, error)
	WriteDoubleLE(float64) error
	ReadDoubleLE() (float64, error)
}
