package zap

import (
	"testing"

	"github.com/twire/twire"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap"
)

func TestDebugAndWarnForwardFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Logger{L: zap.New(core)}

	l.Debug("decoding started", twire.Fields{"proto": "binary"})
	l.Warn("bad version", twire.Fields{"got": 0x81})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Message != "decoding started" {
		t.Fatalf("got %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["proto"]; got != "binary" {
		t.Fatalf("got proto field %v", got)
	}
	if entries[1].Level != zap.WarnLevel {
		t.Fatalf("got level %v", entries[1].Level)
	}
}
