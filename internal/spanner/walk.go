package spanner

import (
	"fmt"

	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Walk evaluates exprs cyclically; each evaluation sees a window of the
// upcoming stream bytes bound to the array views b/h/i/l, plus the current
// absolute cursor bound to n. The evaluated value is the next chunk's
// length. Walk emits [cursor, cursor+len) and advances; it halts when an
// evaluation yields len ≤ 0 or the cursor reaches EOF. The final chunk is
// clamped to EOF rather than rejected.
func Walk(data []byte, exprs []expr.Expr) ([]span.Span, error) {
	if len(exprs) == 0 {
		return nil, fmt.Errorf("walk: at least one expression is required")
	}

	total := uint64(len(data))
	var out []span.Span
	cursor := uint64(0)
	for i := 0; cursor < total; i++ {
		x := exprs[i%len(exprs)]
		env := &expr.Env{
			Scalars:    map[string]int64{"n": int64(cursor)},
			Window:     data[cursor:],
			WindowBase: cursor,
		}
		n, err := x.Eval(env)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			break
		}

		end := cursor + uint64(n)
		if end > total {
			end = total
		}
		out = append(out, span.Span{Start: cursor, End: end})
		cursor = end
	}
	return out, nil
}
