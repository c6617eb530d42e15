package copytext

// appendFunc appends the textual form of v to dst and returns dst.
type appendFunc[T any] func(dst []byte, v T, f Format) []byte

// Encoder converts values of type T to their field literal form under a
// Format. Encoders are immutable once built and safe for concurrent use;
// each call appends into a caller-owned buffer and touches no shared state.
//
// An Encoder carries two paths: the top-level form, and the element form
// used directly inside an array literal. For most encoders the two are
// identical; encoders that quote (String, Slice) omit their own quoting on
// the element path so that an array literal carries exactly one outer pair
// of quote characters.
type Encoder[T any] struct {
	enc  appendFunc[T]
	elem appendFunc[T] // nil means same as enc
	opt  bool          // set by Optional, guards double lifting
}

// New builds an Encoder from an append function. The element path defaults
// to the same function.
func New[T any](fn func(dst []byte, v T, f Format) []byte) Encoder[T] {
	return Encoder[T]{enc: fn}
}

// Append appends the encoding of v to dst and returns the extended buffer.
func (e Encoder[T]) Append(dst []byte, v T, f Format) []byte {
	return e.enc(dst, v, f)
}

// Encode returns the field literal for v. This is the top-level operation:
// it allocates a fresh buffer, applies the encoder once, and extracts the
// resulting string.
func (e Encoder[T]) Encode(v T, f Format) string {
	return string(e.enc(nil, v, f))
}

// Encode renders the field literal for v under the given quote and escape
// characters, with absent optionals encoding as the empty string. It is
// shorthand for e.Encode with a Format carrying no null token.
func Encode[T any](e Encoder[T], v T, quote, escape byte) string {
	return e.Encode(v, Format{Quote: quote, Escape: escape})
}

// appendElement appends the array-element form of v to dst.
func (e Encoder[T]) appendElement(dst []byte, v T, f Format) []byte {
	if e.elem != nil {
		return e.elem(dst, v, f)
	}
	return e.enc(dst, v, f)
}
