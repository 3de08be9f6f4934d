// Package span defines the half-open interval type shared by the slicer
// and slice-stage pipeline stages.
package span

// Span is a half-open interval [Start, End) over a byte stream. 0 <= Start
// <= End is not enforced by the type itself; producers are responsible for
// the invariant (an empty span has Start == End).
type Span struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint64 {
	return s.End - s.Start
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Less orders spans lexicographically on (Start, End), the ordering
// required of every slice sequence fed to a stage expecting sorted input.
func Less(a, b Span) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// Overlaps reports whether a and b share at least one byte offset.
func Overlaps(a, b Span) bool {
	return a.Start < b.End && b.Start < a.End
}
