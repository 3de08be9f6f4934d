package spanops

import "github.com/ocxtal-labs/nd/internal/span"

// Merge left-folds spans sorted by (start, end): if acc.End+n ≥
// next.Start, the accumulator's end grows to cover next; otherwise the
// accumulator is emitted and next starts a new one. Idempotent: merging an
// already-merged sequence with the same n is a no-op.
func Merge(spans []span.Span, n int64) []span.Span {
	sorted := append([]span.Span(nil), spans...)
	span.Sort(sorted)

	var out []span.Span
	for _, s := range sorted {
		if len(out) == 0 {
			out = append(out, s)
			continue
		}
		acc := &out[len(out)-1]
		if int64(acc.End)+n >= int64(s.Start) {
			if s.End > acc.End {
				acc.End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
