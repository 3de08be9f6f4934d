package spanops

import (
	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Extend evaluates each range in rl once per input span (s/e bound to that
// span's own start/end), multiplying span count by len(rl.Ranges); the
// result is re-sorted by (start, end).
func Extend(spans []span.Span, rl expr.RangeList) ([]span.Span, error) {
	var out []span.Span
	for _, s := range spans {
		env := &expr.Env{Scalars: map[string]int64{"s": int64(s.Start), "e": int64(s.End)}}
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
