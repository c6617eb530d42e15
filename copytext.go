// Package copytext provides composable field encoders for the text literal
// format used by bulk-load ("COPY") ingestion into relational stores.
//
// The package is a small algebra of type-directed encoders: primitive
// encoders for scalars, an escaping engine for strings, lifting combinators
// for optionals and arrays, and a struct derivation built from two
// composition operators. Encoders are assembled once per type and applied
// per value; application is a single pass appending into a byte buffer.
//
// # Format
//
// Every encoding is parameterized by a Format: the quote character, the
// escape character, and the null token. Quote and escape may be equal,
// which yields the common "double the quote" escaping style:
//
//	f := copytext.CSV() // quote '"', escape '"', null ""
//	copytext.String.Encode(`a"b`, f) // `"a""b"`
//
// # Instances
//
// Provided primitive encoders:
//
//   - Bool - TRUE / FALSE
//   - Int, Int16, Int32, Int64 - base-10, locale independent
//   - Float32, Float64 - shortest round-trip decimal form
//   - Numeric - arbitrary-precision decimal (shopspring/decimal)
//   - String - quoted and escaped
//   - Bytea - \x followed by lowercase hex, two digits per byte
//   - UUID - canonical uuid form (google/uuid)
//   - Timestamp, Date - temporal literal forms
//
// # Composition
//
// ContraMap adapts an encoder to a new input type and Product joins two
// encoders into a comma-separated pair. Field and Join build on these to
// derive an encoder for any record type from its field projections:
//
//	type Row struct {
//	    ID   int64
//	    Name string
//	}
//
//	var rowEncoder = copytext.Join(
//	    copytext.Field(copytext.Int64, func(r Row) int64 { return r.ID }),
//	    copytext.Field(copytext.String, func(r Row) string { return r.Name }),
//	)
//
//	rowEncoder.Encode(Row{1, "x"}, copytext.CSV()) // `1,"x"`
//
// # Containers
//
// Optional lifts an encoder over a pointer, encoding nil as the format's
// null token (empty by default). Slice lifts an encoder over a slice,
// producing a brace-delimited array literal wrapped in exactly one pair of
// quote characters regardless of nesting depth. Seq applies the same
// algorithm to any finite iter.Seq traversal.
//
// # Rows
//
// Writer assembles full rows from named columns and frames them with the
// protocol's field separator and row terminator. It owns no connection and
// issues no SQL; it writes framed rows to an io.Writer. Writer lifecycle
// events are emitted as capitan signals.
//
// # Derivation
//
// The gen subpackage emits the Field/Join chain for a struct type as Go
// source, so per-type wiring is mechanical and unsupported field types are
// rejected when the generator runs, not when a value is encoded.
package copytext

// Format carries the three configuration characters of an encoding: the
// quote character, the escape character, and the token emitted for absent
// optional values. It is passed through every encoder call and never
// mutated.
//
// Null defaults to the empty string. Bulk-load protocols commonly reserve
// a dedicated sentinel for SQL NULL (text mode uses `\N`); set Null
// explicitly when the target expects one.
type Format struct {
	Quote  byte
	Escape byte
	Null   string
}

// CSV returns the format used by CSV-mode bulk loads: quote and escape are
// both '"', absent optionals encode as the empty string.
func CSV() Format {
	return Format{Quote: '"', Escape: '"'}
}

// Text returns the format used by text-mode bulk loads: quote-doubling
// escaping and the `\N` null sentinel.
func Text() Format {
	return Format{Quote: '"', Escape: '"', Null: `\N`}
}
