// Package zap adapts a *zap.Logger to twire.Logger.
package zap

import (
	"github.com/twire/twire"
	"go.uber.org/zap"
)

type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f twire.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Warn(msg string, f twire.Fields)  { z.L.Warn(msg, zf(f)...) }

func zf(f twire.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

var _ twire.Logger = Logger{}
