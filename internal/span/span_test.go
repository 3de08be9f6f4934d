package span_test

import (
	"testing"

	"github.com/ocxtal-labs/nd/internal/span"
)

func TestLenAndEmpty(t *testing.T) {
	s := span.Span{Start: 4, End: 10}
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
	if s.Empty() {
		t.Errorf("Empty() = true, want false")
	}
	z := span.Span{Start: 4, End: 4}
	if !z.Empty() {
		t.Errorf("Empty() = false, want true")
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		a, b span.Span
		want bool
	}{
		{span.Span{0, 5}, span.Span{5, 10}, false},
		{span.Span{0, 5}, span.Span{4, 10}, true},
		{span.Span{0, 0}, span.Span{0, 5}, false},
	}
	for _, c := range cases {
		if got := span.Overlaps(c.a, c.b); got != c.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSort(t *testing.T) {
	spans := []span.Span{
		{Start: 5, End: 10},
		{Start: 0, End: 5},
		{Start: 0, End: 2},
	}
	span.Sort(spans)
	want := []span.Span{
		{Start: 0, End: 2},
		{Start: 0, End: 5},
		{Start: 5, End: 10},
	}
	for i := range spans {
		if spans[i] != want[i] {
			t.Errorf("spans[%d] = %v, want %v", i, spans[i], want[i])
		}
	}
	if !span.IsSorted(spans) {
		t.Errorf("IsSorted() = false after Sort()")
	}
}
