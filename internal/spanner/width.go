// Package spanner implements nd's Stage 3: slicing the Stage-2 byte stream
// into a sequence of spans via width, find, walk, slice, or guide
// (spec.md §4.3, mutually exclusive).
package spanner

import (
	"fmt"

	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Width tiles a stream of length streamLen into non-overlapping windows of
// length n (the last tile may be shorter), then evaluates r once per tile
// with s/e bound to that tile's own [start, end) to produce the emitted
// span. The default "16, s..e" is the identity tiling.
func Width(streamLen uint64, n uint64, r expr.Range) ([]span.Span, error) {
	if n == 0 {
		return nil, fmt.Errorf("width: N must be positive")
	}

	var out []span.Span
	for start := uint64(0); start < streamLen; start += n {
		end := start + n
		if end > streamLen {
			end = streamLen
		}

		env := &expr.Env{Scalars: map[string]int64{
			"s": int64(start),
			"e": int64(end),
		}}
		rs, re, err := r.Eval(env)
		if err != nil {
			return nil, err
		}
		if re <= rs {
			continue
		}
		if rs < 0 {
			return nil, fmt.Errorf("width: range evaluated to negative start %d", rs)
		}
		out = append(out, span.Span{Start: uint64(rs), End: uint64(re)})
	}
	return out, nil
}
