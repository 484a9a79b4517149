package twire

// Hooks are lightweight callbacks for high-signal safety-limit events.
// Implementations MUST be cheap and non-blocking; do not perform I/O. If
// work may block, buffer it and drop on backpressure (best effort).
type Hooks interface {
	// ContainerRejected fires when CheckContainerSize rejects a declared
	// list/set/map size, or CheckStringSize rejects a declared string/bytes
	// length.
	ContainerRejected(kind Kind, declared int64)
	// DepthRejected fires when CheckRecursionDepth rejects a nested struct.
	DepthRejected(depth int64)
	// BadVersionSeen fires on a message-header version/protocol-id mismatch.
	BadVersionSeen(got byte)
}

// NopHooks is a default no-op.
type NopHooks struct{}

func (NopHooks) ContainerRejected(Kind, int64) {}
func (NopHooks) DepthRejected(int64)           {}
func (NopHooks) BadVersionSeen(byte)           {}

// Multi returns a Hooks that fans out to all provided hooks, in order. Nil
// entries are ignored. Panics from a hook propagate to the caller.
func Multi(hs ...Hooks) Hooks {
	nn := make([]Hooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			nn = append(nn, h)
		}
	}
	return multiHooks(nn)
}

type multiHooks []Hooks

func (m multiHooks) ContainerRejected(k Kind, n int64) {
	for _, h := range m {
		h.ContainerRejected(k, n)
	}
}

func (m multiHooks) DepthRejected(d int64) {
	for _, h := range m {
		h.DepthRejected(d)
	}
}

func (m multiHooks) BadVersionSeen(b byte) {
	for _, h := range m {
		h.BadVersionSeen(b)
	}
}
