package copytext

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitWriterCreated(_ *testing.T) {
	// Should not panic
	emitWriterCreated(context.Background(), 3)
}

func TestEmitWriterFlushed_Success(_ *testing.T) {
	emitWriterFlushed(context.Background(), 100, 4096, nil)
}

func TestEmitWriterFlushed_Error(_ *testing.T) {
	emitWriterFlushed(context.Background(), 0, 0, errors.New("test error"))
}

func TestEmitWriterClosed_Success(_ *testing.T) {
	emitWriterClosed(context.Background(), 100, 4096, 50*time.Millisecond, nil)
}

func TestEmitWriterClosed_Error(_ *testing.T) {
	emitWriterClosed(context.Background(), 0, 0, 50*time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalWriterCreated", SignalWriterCreated},
		{"SignalWriterFlushed", SignalWriterFlushed},
		{"SignalWriterClosed", SignalWriterClosed},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyColumns", KeyColumns},
		{"KeyRows", KeyRows},
		{"KeyBytes", KeyBytes},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
