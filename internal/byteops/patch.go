package byteops

import (
	"fmt"

	"github.com/ocxtal-labs/nd/internal/hexcodec"
)

// Patch applies a sorted, disjoint sequence of patch records to data,
// replacing [offset, offset+length) with each record's payload in turn
// (spec.md §4.2). Deletion records (hexcodec.Record.Deletion) carry an
// empty payload. A patch whose offset+length exceeds EOF has its length
// clamped to EOF; a patch at exactly EOF (offset == len(data), length == 0)
// inserts at the tail. Overlapping patches are fatal.
func Patch(data []byte, records []hexcodec.Record) ([]byte, error) {
	total := uint64(len(data))

	var out []byte
	var cursor uint64
	for i, rec := range records {
		if rec.Offset > total {
			return nil, fmt.Errorf("patch record %d: offset %d is past end of stream (length %d)", i, rec.Offset, total)
		}
		if rec.Offset < cursor {
			return nil, fmt.Errorf("patch record %d: offset %d overlaps a preceding patch (cursor at %d)", i, rec.Offset, cursor)
		}

		length := rec.Length
		if rec.Offset+length > total {
			length = total - rec.Offset
		}

		out = append(out, data[cursor:rec.Offset]...)
		out = append(out, rec.Array...)
		cursor = rec.Offset + length
	}
	out = append(out, data[cursor:]...)
	return out, nil
}
