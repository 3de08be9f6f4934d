package pipeline

import (
	"fmt"
	"strings"

	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/span"
)

func evalConst(src string) (int64, error) {
	x, err := expr.Compile(src)
	if err != nil {
		return 0, err
	}
	return x.Eval(nil)
}

// parsePadArg parses "N[,M]"; either half may be empty, defaulting to 0.
func parsePadArg(s string) (n, m int64, err error) {
	left, right, _ := strings.Cut(s, ",")
	if strings.TrimSpace(left) != "" {
		if n, err = evalConst(left); err != nil {
			return 0, 0, fmt.Errorf("pad: %w", err)
		}
	}
	if strings.TrimSpace(right) != "" {
		if m, err = evalConst(right); err != nil {
			return 0, 0, fmt.Errorf("pad: %w", err)
		}
	}
	return n, m, nil
}

// parseWidthArg parses "N[,S..E]", defaulting the range half to "s..e".
func parseWidthArg(s string) (uint64, expr.Range, error) {
	if strings.TrimSpace(s) == "" {
		s = "16,s..e"
	}
	left, right, hasRange := strings.Cut(s, ",")
	n, err := evalConst(left)
	if err != nil {
		return 0, expr.Range{}, fmt.Errorf("width: %w", err)
	}
	if n <= 0 {
		return 0, expr.Range{}, fmt.Errorf("width: N must be positive, got %d", n)
	}
	rangeSrc := "s..e"
	if hasRange {
		rangeSrc = right
	}
	r, err := expr.CompileRange(rangeSrc)
	if err != nil {
		return 0, expr.Range{}, fmt.Errorf("width: %w", err)
	}
	return uint64(n), r, nil
}

// parseExprList parses a comma-separated list of scalar expressions, used
// by --walk. The expression grammar has no comma operator, so a top-level
// split is unambiguous.
func parseExprList(s string) ([]expr.Expr, error) {
	parts := strings.Split(s, ",")
	out := make([]expr.Expr, 0, len(parts))
	for _, p := range parts {
		x, err := expr.Compile(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("walk: %w", err)
		}
		out = append(out, x)
	}
	return out, nil
}

// evalRangeListOrdered evaluates rl against the whole stream [0, total),
// preserving the caller's range order (unlike spanner.Slice, which sorts)
// — --cut emits spans in the order given, not sorted (spec.md §4.2).
func evalRangeListOrdered(rl expr.RangeList, total uint64) ([]span.Span, error) {
	env := &expr.Env{Scalars: map[string]int64{"s": 0, "e": int64(total)}}
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
	return out, nil
}
