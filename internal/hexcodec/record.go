// Package hexcodec implements nd's hex dump/patch line format: the same
// "offset length | array | mosaic" rendering serves as both the output dump
// format and the patch input format, per the four format signatures b, x,
// nnx and nnb. Formatting writes each byte through fmt and parsing decodes
// each token through strconv; neither uses a lookup table.
package hexcodec

import "fmt"

// Format is one of the four format signatures nd accepts for -F/--in-format
// and -f/--out-format.
type Format int

const (
	// Raw is "b": the stream is (or becomes) raw bytes, no framing.
	Raw Format = iota
	// RawNoHeader is "nnb": accepted on input, treated identically to Raw.
	RawNoHeader
	// Hex is "x": records carry an absolute OFFSET LENGTH prefix, which
	// parsing treats as authoritative.
	Hex
	// HexNoHeader is "nnx": records carry no OFFSET LENGTH prefix; arrays
	// are concatenated in stream order and offsets are ignored.
	HexNoHeader
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "b"
	case RawNoHeader:
		return "nnb"
	case Hex:
		return "x"
	case HexNoHeader:
		return "nnx"
	default:
		return "?"
	}
}

// ParseFormat resolves a format signature string. Two-letter combinations
// other than nn, and anything else, are invalid.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "b":
		return Raw, nil
	case "nnb":
		return RawNoHeader, nil
	case "x":
		return Hex, nil
	case "nnx":
		return HexNoHeader, nil
	default:
		return 0, fmt.Errorf("invalid format signature %q", s)
	}
}

// HasHeader reports whether dump lines in this format carry an OFFSET
// LENGTH prefix (true for x, false for nnx; meaningless for Raw/RawNoHeader).
func (f Format) HasHeader() bool {
	return f == Hex
}

// Record is one decoded dump/patch line: the bytes [Offset, Offset+Length)
// of a target stream are replaced by Array. Deletion is set when the line
// carried no array (a truncated "OFFSET LENGTH" record, or "| " with an
// empty array field) — Length bytes are consumed from the target with
// nothing emitted in their place.
type Record struct {
	Offset   uint64
	Length   uint64
	Array    []byte
	Deletion bool
}
