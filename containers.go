package copytext

import (
	"iter"
	"slices"
)

// Optional lifts an encoder for A into an encoder for *A. A non-nil value
// encodes exactly as the wrapped encoder would; nil appends the format's
// null token (empty by default).
//
// The wrapped encoder must not itself be optional. Lifting twice panics
// with ErrAlreadyOptional at construction time, before any value is
// encoded.
func Optional[A any](e Encoder[A]) Encoder[*A] {
	if e.opt {
		panic(ErrAlreadyOptional)
	}
	return Encoder[*A]{
		enc: func(dst []byte, v *A, f Format) []byte {
			if v == nil {
				return append(dst, f.Null...)
			}
			return e.enc(dst, *v, f)
		},
		elem: func(dst []byte, v *A, f Format) []byte {
			if v == nil {
				return append(dst, f.Null...)
			}
			return e.appendElement(dst, *v, f)
		},
		opt: true,
	}
}

// Slice lifts an element encoder into an encoder for a slice, producing a
// brace-delimited array literal wrapped in one pair of quote characters:
// quote, '{', the elements joined by commas, '}', quote. Elements are
// encoded through their element path, so a nested slice contributes its
// braces without re-quoting and the whole literal carries exactly one
// outer quote pair at any nesting depth.
func Slice[A any](e Encoder[A]) Encoder[[]A] {
	body := func(dst []byte, vs []A, f Format) []byte {
		dst = append(dst, '{')
		for i, v := range vs {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = e.appendElement(dst, v, f)
		}
		return append(dst, '}')
	}
	return Encoder[[]A]{
		enc: func(dst []byte, vs []A, f Format) []byte {
			dst = append(dst, f.Quote)
			dst = body(dst, vs, f)
			return append(dst, f.Quote)
		},
		elem: body,
	}
}

// Seq lifts an element encoder into an encoder for any finite iter.Seq
// traversal. The traversal is materialized into a slice once per encoded
// value, then the Slice algorithm applies; there is no second
// implementation of the array-quoting rule.
func Seq[A any](e Encoder[A]) Encoder[iter.Seq[A]] {
	return ContraMap(Slice(e), func(it iter.Seq[A]) []A {
		return slices.Collect(it)
	})
}
