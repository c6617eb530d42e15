package copytext

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for writer lifecycle events. Encoding itself emits nothing; the
// pure value-to-text path stays free of side effects.
var (
	SignalWriterCreated = capitan.NewSignal("copytext.writer.created", "Row writer instantiated")
	SignalWriterFlushed = capitan.NewSignal("copytext.writer.flushed", "Row writer buffer flushed")
	SignalWriterClosed  = capitan.NewSignal("copytext.writer.closed", "Row writer closed")
)

// Keys for typed event data.
var (
	KeyColumns  = capitan.NewIntKey("columns")
	KeyRows     = capitan.NewIntKey("rows")
	KeyBytes    = capitan.NewIntKey("bytes")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitWriterCreated emits an event when a writer is constructed.
func emitWriterCreated(ctx context.Context, columns int) {
	capitan.Emit(ctx, SignalWriterCreated,
		KeyColumns.Field(columns),
	)
}

// emitWriterFlushed emits an event when a writer flushes its buffer.
func emitWriterFlushed(ctx context.Context, rows, bytes int, err error) {
	fields := []capitan.Field{
		KeyRows.Field(rows),
		KeyBytes.Field(bytes),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriterFlushed, fields...)
	} else {
		capitan.Emit(ctx, SignalWriterFlushed, fields...)
	}
}

// emitWriterClosed emits an event when a writer is closed.
func emitWriterClosed(ctx context.Context, rows, bytes int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyRows.Field(rows),
		KeyBytes.Field(bytes),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriterClosed, fields...)
	} else {
		capitan.Emit(ctx, SignalWriterClosed, fields...)
	}
}
