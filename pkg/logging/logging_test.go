package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	if Level(false) != zapcore.WarnLevel {
		t.Errorf("expected warn level by default, got %s", Level(false))
	}
	if Level(true) != zapcore.DebugLevel {
		t.Errorf("expected debug level when verbose, got %s", Level(true))
	}
}

func TestNew(t *testing.T) {
	l := New(false)
	if l == nil {
		t.Fatalf("expected a logger")
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("info should be suppressed without verbose")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("warnings should be enabled")
	}

	if !New(true).Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("debug should be enabled when verbose")
	}
}
