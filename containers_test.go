package copytext_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/zoobzio/copytext"
)

func TestOptional_Present(t *testing.T) {
	f := copytext.CSV()

	enc := copytext.Optional(copytext.Int32)
	v := int32(42)

	want := copytext.Int32.Encode(v, f)
	if got := enc.Encode(&v, f); got != want {
		t.Errorf("Encode(&42) = %q, want %q", got, want)
	}
}

func TestOptional_Absent(t *testing.T) {
	enc := copytext.Optional(copytext.Int32)

	if got := enc.Encode(nil, copytext.CSV()); got != "" {
		t.Errorf("Encode(nil) = %q, want empty string", got)
	}
}

func TestOptional_NullToken(t *testing.T) {
	enc := copytext.Optional(copytext.String)

	if got := enc.Encode(nil, copytext.Text()); got != `\N` {
		t.Errorf("Encode(nil) = %q, want %q", got, `\N`)
	}

	s := "x"
	if got := enc.Encode(&s, copytext.Text()); got != `"x"` {
		t.Errorf("Encode(&x) = %q, want %q", got, `"x"`)
	}
}

func TestOptional_DoubleLiftPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Optional(Optional()) should panic at construction")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, copytext.ErrAlreadyOptional) {
			t.Errorf("panic value = %v, want ErrAlreadyOptional", r)
		}
	}()

	copytext.Optional(copytext.Optional(copytext.Int32))
}

func TestSlice(t *testing.T) {
	f := copytext.CSV()

	tests := []struct {
		name  string
		input []int32
		want  string
	}{
		{"empty", nil, `"{}"`},
		{"single", []int32{7}, `"{7}"`},
		{"multiple", []int32{1, 2, 3}, `"{1,2,3}"`},
	}

	enc := copytext.Slice(copytext.Int32)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enc.Encode(tt.input, f); got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlice_SingleQuotePairAtAnyDepth(t *testing.T) {
	f := copytext.CSV()

	nested := copytext.Slice(copytext.Slice(copytext.Int32))
	got := nested.Encode([][]int32{{1, 2}, {3}}, f)
	if got != `"{{1,2},{3}}"` {
		t.Errorf("Encode() = %q, want %q", got, `"{{1,2},{3}}"`)
	}
	if strings.Count(got, `"`) != 2 {
		t.Errorf("Encode() = %q, want exactly one outer quote pair", got)
	}

	deeper := copytext.Slice(nested)
	got = deeper.Encode([][][]int32{{{1}}, {{2}, {3}}}, f)
	if got != `"{{{1}},{{2},{3}}}"` {
		t.Errorf("Encode() = %q, want %q", got, `"{{{1}},{{2},{3}}}"`)
	}
}

func TestSlice_StringElementsUnquoted(t *testing.T) {
	f := copytext.CSV()

	enc := copytext.Slice(copytext.String)
	if got := enc.Encode([]string{"a", "b"}, f); got != `"{a,b}"` {
		t.Errorf("Encode() = %q, want %q", got, `"{a,b}"`)
	}

	// Escaping survives inside the array body even though the element's
	// own quotes are subsumed by the outer pair.
	if got := enc.Encode([]string{`a"b`}, f); got != `"{a""b}"` {
		t.Errorf("Encode() = %q, want %q", got, `"{a""b}"`)
	}
}

func TestSlice_OptionalElements(t *testing.T) {
	f := copytext.Text()

	v := int32(1)
	enc := copytext.Slice(copytext.Optional(copytext.Int32))
	got := enc.Encode([]*int32{&v, nil}, f)
	if got != `"{1,\N}"` {
		t.Errorf("Encode() = %q, want %q", got, `"{1,\N}"`)
	}
}

func TestSlice_CommaCount(t *testing.T) {
	f := copytext.CSV()
	enc := copytext.Slice(copytext.Int32)

	for n := 0; n < 5; n++ {
		vs := make([]int32, n)
		got := enc.Encode(vs, f)
		want := max(n-1, 0)
		if strings.Count(got, ",") != want {
			t.Errorf("Encode(len %d) = %q, want %d commas", n, got, want)
		}
	}
}

func TestSeq(t *testing.T) {
	f := copytext.CSV()

	vs := []int32{1, 2, 3}
	enc := copytext.Seq(copytext.Int32)

	want := copytext.Slice(copytext.Int32).Encode(vs, f)
	if got := enc.Encode(slices.Values(vs), f); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestSeq_Nested(t *testing.T) {
	f := copytext.CSV()

	// A traversal of traversable elements still carries one quote pair.
	inner := copytext.Slice(copytext.Int32)
	enc := copytext.Seq(inner)
	got := enc.Encode(slices.Values([][]int32{{1}, {2, 3}}), f)
	if got != `"{{1},{2,3}}"` {
		t.Errorf("Encode() = %q, want %q", got, `"{{1},{2,3}}"`)
	}
}
