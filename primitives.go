package copytext

import (
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Temporal literal layouts accepted by bulk-load text input.
const (
	timestampLayout = "2006-01-02 15:04:05.999999-07"
	dateLayout      = "2006-01-02"
)

// Bool encodes to the literal token TRUE or FALSE, unquoted.
var Bool = New(func(dst []byte, v bool, _ Format) []byte {
	if v {
		return append(dst, "TRUE"...)
	}
	return append(dst, "FALSE"...)
})

// Int encodes a platform int in base 10.
var Int = New(func(dst []byte, v int, _ Format) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
})

// Int16 encodes a smallint in base 10.
var Int16 = New(func(dst []byte, v int16, _ Format) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
})

// Int32 encodes an integer in base 10.
var Int32 = New(func(dst []byte, v int32, _ Format) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
})

// Int64 encodes a bigint in base 10.
var Int64 = New(func(dst []byte, v int64, _ Format) []byte {
	return strconv.AppendInt(dst, v, 10)
})

// Float32 encodes a real in its shortest round-trip decimal form.
var Float32 = New(func(dst []byte, v float32, _ Format) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
})

// Float64 encodes a double precision value in its shortest round-trip
// decimal form.
var Float64 = New(func(dst []byte, v float64, _ Format) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
})

// Numeric encodes an arbitrary-precision decimal in its canonical base-10
// string form.
var Numeric = New(func(dst []byte, v decimal.Decimal, _ Format) []byte {
	return append(dst, v.String()...)
})

// String encodes a quoted, escaped string literal. Inside an array literal
// a string contributes its escaped body without the surrounding quotes; the
// array's outer quote pair subsumes them.
var String = Encoder[string]{
	enc: func(dst []byte, v string, f Format) []byte {
		return appendQuoted(dst, v, f)
	},
	elem: func(dst []byte, v string, f Format) []byte {
		return appendEscaped(dst, v, f)
	},
}

// Bytea encodes a byte sequence as \x followed by lowercase hex digits,
// exactly two per byte. The empty sequence encodes as \x alone.
var Bytea = New(func(dst []byte, v []byte, _ Format) []byte {
	dst = append(dst, '\\', 'x')
	return hex.AppendEncode(dst, v)
})

// UUID encodes in the canonical 8-4-4-4-12 form.
var UUID = New(func(dst []byte, v uuid.UUID, _ Format) []byte {
	return append(dst, v.String()...)
})

// Timestamp encodes a point in time with microsecond precision and zone
// offset.
var Timestamp = New(func(dst []byte, v time.Time, _ Format) []byte {
	return v.AppendFormat(dst, timestampLayout)
})

// Date encodes the calendar date of v.
var Date = New(func(dst []byte, v time.Time, _ Format) []byte {
	return v.AppendFormat(dst, dateLayout)
})
