package spanner

import (
	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Slice evaluates each range in rl against the whole stream (s=0,
// e=streamLen bound as the ambient stream bounds) and emits one span per
// range, sorted by (start, end).
func Slice(streamLen uint64, rl expr.RangeList) ([]span.Span, error) {
	env := &expr.Env{Scalars: map[string]int64{
		"s": 0,
		"e": int64(streamLen),
	}}

	out := make([]span.Span, 0, len(rl.Ranges))
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
	span.Sort(out)
	return out, nil
}
