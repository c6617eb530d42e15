package copytext

// Pair holds two values encoded as adjacent columns.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ContraMap adapts an encoder for A into an encoder for B via a projection
// from B to A. The projection must be a pure total function; ContraMap
// changes only the input type, never the encoding.
func ContraMap[B, A any](e Encoder[A], fn func(B) A) Encoder[B] {
	out := Encoder[B]{
		enc: func(dst []byte, v B, f Format) []byte {
			return e.enc(dst, fn(v), f)
		},
		opt: e.opt,
	}
	if e.elem != nil {
		inner := e.elem
		out.elem = func(dst []byte, v B, f Format) []byte {
			return inner(dst, fn(v), f)
		}
	}
	return out
}

// Product combines two encoders into one for the pair, writing the first
// encoding, a single comma, then the second. Product adds no quoting or
// escaping of its own; chained left or right it produces the same
// comma-separated column sequence.
func Product[A, B any](ea Encoder[A], eb Encoder[B]) Encoder[Pair[A, B]] {
	return New(func(dst []byte, v Pair[A, B], f Format) []byte {
		dst = ea.enc(dst, v.First, f)
		dst = append(dst, ',')
		return eb.enc(dst, v.Second, f)
	})
}
