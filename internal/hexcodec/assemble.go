package hexcodec

import "fmt"

// Assemble consumes a decoded record stream and produces a flat byte
// stream, for using an x/nnx dump directly as a byte-stream source
// (spec.md §4.5): in Hex format each record's array is placed at its
// absolute offset, gaps are filled with filler, and the result ends at the
// furthest offset+len(Array) of any record (the Length field is not
// consulted); in HexNoHeader format
// offsets are ignored and arrays are concatenated in stream order.
// Deletion records contribute nothing (Hex) or are skipped (HexNoHeader).
func Assemble(f Format, records []Record, filler byte) ([]byte, error) {
	switch f {
	case Hex:
		return assembleHex(records, filler)
	case HexNoHeader:
		return assembleConcat(records)
	default:
		return nil, fmt.Errorf("Assemble: format %v is not a line-framed format", f)
	}
}

func assembleHex(records []Record, filler byte) ([]byte, error) {
	var out []byte
	var end uint64
	for _, rec := range records {
		if rec.Deletion {
			continue
		}
		recEnd := rec.Offset + uint64(len(rec.Array))
		if recEnd > end {
			if recEnd > uint64(len(out)) {
				grown := make([]byte, recEnd)
				copy(grown, out)
				for i := len(out); i < int(recEnd); i++ {
					grown[i] = filler
				}
				out = grown
			}
			end = recEnd
		}
		copy(out[rec.Offset:recEnd], rec.Array)
	}
	return out[:end], nil
}

func assembleConcat(records []Record) ([]byte, error) {
	var out []byte
	for _, rec := range records {
		if rec.Deletion {
			continue
		}
		out = append(out, rec.Array...)
	}
	return out, nil
}
