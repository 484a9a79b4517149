package twire

// Budget tracks the remaining bytes permitted for a single message decode,
// per Config.MaxMessageSize. A zero-value Budget (or one built from an
// unset MaxMessageSize) is unlimited: Consume never fails and Remaining
// always returns unlimitedRemaining (1<<62).
type Budget struct {
	limited   bool
	remaining int64
}

const unlimitedRemaining = int64(1) << 62

// NewBudget builds a Budget from a Config's MaxMessageSize.
func NewBudget(cfg Config) *Budget {
	if cfg.MaxMessageSize <= 0 {
		return &Budget{limited: false}
	}
	return &Budget{limited: true, remaining: cfg.MaxMessageSize}
}

// Remaining returns the bytes still permitted, or a very large number if
// unlimited.
func (b *Budget) Remaining() int64 {
	if b == nil || !b.limited {
		return unlimitedRemaining
	}
	return b.remaining
}

// Consume deducts n bytes from the budget. It never itself returns an
// error: exceeding the budget is reported by CheckContainerSize /
// CheckStringSize callers comparing a declared size against Remaining()
// before the bytes are read. Consume saturates at 0 rather than going
// negative.
func (b *Budget) Consume(n int64) {
	if b == nil || !b.limited {
		return
	}
	b.remaining -= n
	if b.remaining < 0 {
		b.remaining = 0
	}
}

// CheckContainerSize validates a declared list/set/map cardinality before
// any allocation proportional to it occurs.
//
//   - count < 0                                        -> NegativeSize
//   - cfg.MaxContainerSize set && count > cap           -> SizeLimit
//   - cfg.MaxMessageSize set && count*minElemBytes > remaining -> SizeLimit
func CheckContainerSize(cfg Config, count int64, minElemBytes int64, remaining int64) error {
	if count < 0 {
		return newErrf(NegativeSize, "negative container size %d", count)
	}
	if cfg.MaxContainerSize > 0 && count > cfg.MaxContainerSize {
		cfg.hooks().ContainerRejected(SizeLimit, count)
		cfg.logger().Warn("container size rejected", Fields{"count": count, "cap": cfg.MaxContainerSize})
		return newErrf(SizeLimit, "Container size %d exceeds maximum allowed size of %d", count, cfg.MaxContainerSize)
	}
	if cfg.MaxMessageSize > 0 {
		need := count * minElemBytes
		if need > remaining {
			cfg.hooks().ContainerRejected(SizeLimit, count)
			cfg.logger().Warn("container size exceeds message budget", Fields{"count": count, "need": need, "remaining": remaining})
			return newErrf(SizeLimit, "%d bytes, exceeding message size limit of %d", need, cfg.MaxMessageSize)
		}
	}
	return nil
}

// CheckStringSize validates a declared string/bytes length before the bytes
// are read.
//
//   - length < 0                                  -> NegativeSize
//   - cfg.MaxStringSize set && length > cap        -> SizeLimit
//   - cfg.MaxMessageSize set && length > remaining -> SizeLimit
func CheckStringSize(cfg Config, length int64, remaining int64) error {
	if length < 0 {
		return newErrf(NegativeSize, "negative string size %d", length)
	}
	if cfg.MaxStringSize > 0 && length > cfg.MaxStringSize {
		cfg.hooks().ContainerRejected(SizeLimit, length)
		cfg.logger().Warn("string size rejected", Fields{"len": length, "cap": cfg.MaxStringSize})
		return newErrf(SizeLimit, "String size %d exceeds maximum allowed size of %d", length, cfg.MaxStringSize)
	}
	if cfg.MaxMessageSize > 0 && length > remaining {
		cfg.hooks().ContainerRejected(SizeLimit, length)
		cfg.logger().Warn("string size exceeds message budget", Fields{"len": length, "remaining": remaining})
		return newErrf(SizeLimit, "%d bytes, exceeding message size limit of %d", length, cfg.MaxMessageSize)
	}
	return nil
}

// CheckRecursionDepth fires DepthLimit when depth >= cap on struct entry.
// Called before the depth counter is incremented, so cap is the maximum
// achievable nesting depth.
func CheckRecursionDepth(cfg Config, depth int64) error {
	if cfg.MaxRecursionDepth > 0 && depth >= cfg.MaxRecursionDepth {
		cfg.hooks().DepthRejected(depth)
		cfg.logger().Warn("recursion depth rejected", Fields{"depth": depth, "cap": cfg.MaxRecursionDepth})
		return newErrf(DepthLimit, "depth %d exceeds maximum allowed recursion depth of %d", depth, cfg.MaxRecursionDepth)
	}
	return nil
}
