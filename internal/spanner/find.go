package spanner

import (
	"bytes"
	"fmt"

	"github.com/ocxtal-labs/nd/internal/span"
)

// Find locates all non-overlapping matches of pattern in data and emits
// each as a span, scanning left to right and resuming after each match.
func Find(data []byte, pattern []byte) ([]span.Span, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("find: pattern must not be empty")
	}

	var out []span.Span
	pos := 0
	for pos <= len(data)-len(pattern) {
		idx := bytes.Index(data[pos:], pattern)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(pattern)
		out = append(out, span.Span{Start: uint64(start), End: uint64(end)})
		pos = end
	}
	return out, nil
}
