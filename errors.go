package twire

import "fmt"

// Kind classifies a twire error. Kinds are flat, not hierarchical.
type Kind int

const (
	// BadVersion signals a protocol-id or version header mismatch.
	BadVersion Kind = iota
	// InvalidData signals an unknown type tag, non-UTF-8 string, or a bool
	// byte outside {0,1,2}.
	InvalidData
	// NegativeSize signals a signed length or count < 0 on the wire.
	NegativeSize
	// SizeLimit signals a declared size violating max_container_size,
	// max_string_size, or the message-size budget.
	SizeLimit
	// DepthLimit signals nesting beyond max_recursion_depth.
	DepthLimit
	// Unknown signals programmer misuse of the encoder/decoder.
	Unknown
	// Transport wraps an error surfaced by the underlying transport.
	Transport
)

func (k Kind) String() string {
	switch k {
	case BadVersion:
		return "BadVersion"
	case InvalidData:
		return "InvalidData"
	case NegativeSize:
		return "NegativeSize"
	case SizeLimit:
		return "SizeLimit"
	case DepthLimit:
		return "DepthLimit"
	case Unknown:
		return "Unknown"
	case Transport:
		return "Transport"
	default:
		return "Kind(?)"
	}
}

// Error is the concrete error type returned by every twire operation that
// can fail. It carries a Kind for programmatic dispatch and, for Transport
// errors, the wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("twire: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("twire: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether err is a *Error of the given Kind.
func Is(err error, k Kind) bool {
	te, ok := err.(*Error)
	return ok && te.Kind == k
}

func newErrf(k Kind, format string, args ...any) error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// WrapTransport wraps a transport-supplied error as a Transport-kind Error.
// Transports should use this (or let the codec do it) rather than returning
// bare errors, so callers can distinguish transport failure from protocol
// failure via Is(err, Transport).
func WrapTransport(err error) error {
	if err == nil {
		return nil
	}
	if te, ok := err.(*Error); ok && te.Kind == Transport {
		return te
	}
	return &Error{Kind: Transport, Msg: "transport operation failed", Cause: err}
}
