package copytext

// Field adapts an encoder for a field's type into an encoder for the
// record, via the field's projection. It is ContraMap under a name that
// reads well in a Join chain.
func Field[R, A any](e Encoder[A], get func(R) A) Encoder[R] {
	return ContraMap(e, get)
}

// Join chains field encoders left to right into a record encoder, writing
// the fields in the given order separated by commas. A record encoder for
// a nested record composes by passing its Join result to Field.
//
// A single field degenerates to that field's encoder unchanged. Join with
// no fields panics with ErrNoFields at construction time; a record with
// zero fields has no derivable encoder.
func Join[R any](fields ...Encoder[R]) Encoder[R] {
	if len(fields) == 0 {
		panic(ErrNoFields)
	}
	if len(fields) == 1 {
		return fields[0]
	}
	// (f1, (f2, (f3, ...))) via the pair operator, each step projecting
	// the whole record into both positions.
	rest := Join(fields[1:]...)
	return ContraMap(Product(fields[0], rest), func(r R) Pair[R, R] {
		return Pair[R, R]{First: r, Second: r}
	})
}
