package twire

// Config carries the optional safety caps enforced by both codecs, plus the
// optional ambient Logger/Hooks. Every cap field follows a 0-means-unlimited
// convention: a cap is "not set" when its value is <= 0.
type Config struct {
	// MaxMessageSize bounds the total bytes a single message decode may
	// consume. 0 (or negative) disables the cap.
	MaxMessageSize int64
	// MaxContainerSize bounds the declared element count of any single
	// list/set/map. 0 (or negative) disables the cap.
	MaxContainerSize int64
	// MaxStringSize bounds the declared length of any string/bytes value.
	// 0 (or negative) disables the cap.
	MaxStringSize int64
	// MaxRecursionDepth bounds nested struct_begin/struct_end pairs. 0 (or
	// negative) disables the cap.
	MaxRecursionDepth int64

	// Logger receives a Warn call when a safety cap rejects a frame.
	// Nil means NopLogger.
	Logger Logger
	// Hooks receives the same events in callback form. Nil means NopHooks.
	Hooks Hooks
}

// NoLimits returns a Config with every cap disabled.
func NoLimits() Config {
	return Config{}
}

// DefaultConfig returns reasonable caps for decoding input from an
// untrusted or unreliable peer. Callers that fully trust their peer may
// prefer NoLimits.
func DefaultConfig() Config {
	return Config{
		MaxMessageSize:    64 * 1024 * 1024,
		MaxContainerSize:  1 << 22, // ~4M elements
		MaxStringSize:     16 * 1024 * 1024,
		MaxRecursionDepth: 64,
	}
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

func (c Config) hooks() Hooks {
	if c.Hooks == nil {
		return NopHooks{}
	}
	return c.Hooks
}
