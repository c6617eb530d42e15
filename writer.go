package copytext

import (
	"bufio"
	"context"
	"io"
	"time"
)

// Column pairs a name with an encoder over the row type. The encoder is
// usually built with Col, which projects the row down to one field.
type Column[R any] struct {
	Name    string
	Encoder Encoder[R]
}

// Col builds a named column from a field encoder and its projection.
func Col[R, A any](name string, e Encoder[A], get func(R) A) Column[R] {
	return Column[R]{Name: name, Encoder: Field(e, get)}
}

// WriterOption configures a Writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	separator  byte
	terminator byte
	header     bool
}

// WithSeparator sets the record-level field separator. The default is tab,
// the separator used by text-mode bulk loads. This is distinct from the
// comma used inside array and record literals.
func WithSeparator(sep byte) WriterOption {
	return func(c *writerConfig) { c.separator = sep }
}

// WithTerminator sets the row terminator. The default is '\n'.
func WithTerminator(term byte) WriterOption {
	return func(c *writerConfig) { c.terminator = term }
}

// WithHeader emits the column names as the first row.
func WithHeader() WriterOption {
	return func(c *writerConfig) { c.header = true }
}

// Writer assembles encoded rows and frames them for a bulk-load sink. It
// calls each column's encoder once per row, joins the results with the
// field separator, and terminates the row. The writer owns no connection
// and issues no SQL; the destination is an opaque io.Writer.
//
// A Writer is not safe for concurrent use; it owns a single row buffer.
// Encoders it holds remain shareable.
type Writer[R any] struct {
	out    *bufio.Writer
	cols   []Column[R]
	format Format
	cfg    writerConfig

	buf     []byte
	rows    int
	written int
	pending bool // header not yet written
	start   time.Time
}

// NewWriter builds a Writer over the given columns. It fails with
// ErrNoColumns when no columns are provided; a row with zero columns has
// no defined framing.
func NewWriter[R any](w io.Writer, f Format, cols []Column[R], opts ...WriterOption) (*Writer[R], error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}

	cfg := writerConfig{separator: '\t', terminator: '\n'}
	for _, opt := range opts {
		opt(&cfg)
	}

	wr := &Writer[R]{
		out:     bufio.NewWriter(w),
		cols:    cols,
		format:  f,
		cfg:     cfg,
		pending: cfg.header,
		start:   time.Now(),
	}

	emitWriterCreated(context.Background(), len(cols))
	return wr, nil
}

// Write encodes one row and appends it to the output buffer.
func (w *Writer[R]) Write(row R) error {
	if w.pending {
		w.pending = false
		if err := w.writeHeader(); err != nil {
			return err
		}
	}

	w.buf = w.buf[:0]
	for i, col := range w.cols {
		if i > 0 {
			w.buf = append(w.buf, w.cfg.separator)
		}
		w.buf = col.Encoder.Append(w.buf, row, w.format)
	}
	w.buf = append(w.buf, w.cfg.terminator)

	n, err := w.out.Write(w.buf)
	w.written += n
	if err != nil {
		return err
	}
	w.rows++
	return nil
}

// writeHeader emits the column names joined by the field separator.
func (w *Writer[R]) writeHeader() error {
	w.buf = w.buf[:0]
	for i, col := range w.cols {
		if i > 0 {
			w.buf = append(w.buf, w.cfg.separator)
		}
		w.buf = append(w.buf, col.Name...)
	}
	w.buf = append(w.buf, w.cfg.terminator)

	n, err := w.out.Write(w.buf)
	w.written += n
	return err
}

// Rows returns the number of data rows written so far.
func (w *Writer[R]) Rows() int {
	return w.rows
}

// Flush writes buffered rows through to the destination.
func (w *Writer[R]) Flush() error {
	err := w.out.Flush()
	emitWriterFlushed(context.Background(), w.rows, w.written, err)
	return err
}

// Close flushes buffered rows and emits the closing signal. The writer
// must not be used after Close.
func (w *Writer[R]) Close() error {
	err := w.out.Flush()
	emitWriterClosed(context.Background(), w.rows, w.written, time.Since(w.start), err)
	return err
}
