package spanops

import (
	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Invert computes the complement of the union of spans over [0, streamLen),
// then applies each range in rl to each gap (s/e bound to the gap's own
// start/end) to produce the output, re-sorted by (start, end).
func Invert(streamLen uint64, spans []span.Span, rl expr.RangeList) ([]span.Span, error) {
	sorted := append([]span.Span(nil), spans...)
	span.Sort(sorted)

	var gaps []span.Span
	cursor := uint64(0)
	for _, s := range sorted {
		if s.Start > cursor {
			gaps = append(gaps, span.Span{Start: cursor, End: s.Start})
		}
		if s.End > cursor {
			cursor = s.End
		}
	}
	if cursor < streamLen {
		gaps = append(gaps, span.Span{Start: cursor, End: streamLen})
	}

	var out []span.Span
	for _, gap := range gaps {
		env := &expr.Env{Scalars: map[string]int64{"s": int64(gap.Start), "e": int64(gap.End)}}
		for _, r := range rl.Ranges {
			rs, re, err := r.Eval(env)
			if err != nil {
				return nil, err
			}
			if re <= rs {
				continue
			}
			out = append(out, span.Span{Start: uint64(rs), End: uint64(re)})
		}
	}
	span.Sort(out)
	return out, nil
}
