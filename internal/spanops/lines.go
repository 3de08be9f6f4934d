package spanops

import (
	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Lines evaluates rl once against the ambient index domain (s=0,
// e=len(spans)) and keeps only input spans whose index falls in the
// resulting union of ranges, preserving input order.
func Lines(spans []span.Span, rl expr.RangeList) ([]span.Span, error) {
	env := &expr.Env{Scalars: map[string]int64{"s": 0, "e": int64(len(spans))}}

	var keep []span.Span
	for _, r := range rl.Ranges {
		rs, re, err := r.Eval(env)
		if err != nil {
			return nil, err
		}
		keep = append(keep, span.Span{Start: clampIndex(rs), End: clampIndex(re)})
	}

	var out []span.Span
	for i, s := range spans {
		if indexInRanges(int64(i), keep) {
			out = append(out, s)
		}
	}
	return out, nil
}

func clampIndex(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

func indexInRanges(i int64, ranges []span.Span) bool {
	for _, r := range ranges {
		if i >= int64(r.Start) && i < int64(r.End) {
			return true
		}
	}
	return false
}
