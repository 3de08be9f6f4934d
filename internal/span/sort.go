package span

import "sort"

// Sort orders spans in place by (Start, End), the ordering invariant I1
// requires downstream of slice and slice-stage operations.
func Sort(spans []Span) {
	sort.Slice(spans, func(i, j int) bool {
		return Less(spans[i], spans[j])
	})
}

// IsSorted reports whether spans are already in (Start, End) order.
func IsSorted(spans []Span) bool {
	for i := 1; i < len(spans); i++ {
		if Less(spans[i], spans[i-1]) {
			return false
		}
	}
	return true
}
