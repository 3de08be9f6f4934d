// Package byteops implements nd's Stage 2: cut, pad, and patch applied in
// that fixed order (spec.md §4.2) over the Stage-1 byte stream.
package byteops

import "github.com/ocxtal-labs/nd/internal/span"

// Cut emits the concatenation of ranges over data in the order given (not
// sorted). Empty ranges (including E < S, per the range grammar) produce
// no output; ends past EOF are clamped.
func Cut(data []byte, ranges []span.Span) []byte {
	total := uint64(len(data))

	var out []byte
	for _, r := range ranges {
		end := r.End
		if end > total {
			end = total
		}
		start := r.Start
		if start >= end {
			continue
		}
		out = append(out, data[start:end]...)
	}
	return out
}
