package spanner

import (
	"fmt"
	"io"

	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/span"
)

// Guide reads sorted "offset length [| ...]" records from r (the array and
// mosaic fields, if present, are ignored) and emits [offset, offset+length)
// per record. An unsorted guide is fatal.
func Guide(r io.Reader) ([]span.Span, error) {
	dec, err := hexcodec.NewDecoder(r, hexcodec.Hex)
	if err != nil {
		return nil, err
	}

	var out []span.Span
	for {
		rec, ok := dec.Next()
		if !ok {
			break
		}
		s := span.Span{Start: rec.Offset, End: rec.Offset + rec.Length}
		if len(out) > 0 && span.Less(s, out[len(out)-1]) {
			return nil, fmt.Errorf("guide: record %v is out of order after %v", s, out[len(out)-1])
		}
		out = append(out, s)
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
