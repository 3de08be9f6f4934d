package hexcodec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseHexField parses an OFFSET or LENGTH field: 1-15 hex digits. A
// 16-digit (or longer) field is a fatal parse error.
func parseHexField(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty offset/length field")
	}
	if len(s) >= 16 {
		return 0, fmt.Errorf("offset/length field %q exceeds 15 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed offset/length field %q: %w", s, err)
	}
	return v, nil
}

// parseHexArray parses the array field between the first and second '|':
// whitespace-separated two-digit hex byte tokens. Any token that is not
// exactly two valid hex digits is a fatal error (including odd-digit
// tokens — nd rejects rather than guesses a nibble).
func parseHexArray(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, tok := range fields {
		if len(tok) != 2 {
			return nil, fmt.Errorf("malformed hex byte token %q: want exactly two hex digits", tok)
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("malformed hex byte token %q: %w", tok, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// ParseHexLine parses one line of x/nnx dump/patch text. A trailing
// comment after a second '|' (the mosaic, or anything past it) is ignored.
func ParseHexLine(f Format, line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	segs := strings.SplitN(line, "|", 3)
	prefix := segs[0]

	var rec Record
	if f.HasHeader() {
		fields := strings.Fields(prefix)
		if len(fields) < 2 {
			return Record{}, fmt.Errorf("malformed record %q: missing offset/length", line)
		}
		off, err := parseHexField(fields[0])
		if err != nil {
			return Record{}, err
		}
		ln, err := parseHexField(fields[1])
		if err != nil {
			return Record{}, err
		}
		rec.Offset, rec.Length = off, ln
	} else if strings.TrimSpace(prefix) != "" {
		return Record{}, fmt.Errorf("malformed record %q: unexpected text before '|' in nnx format", line)
	}

	if len(segs) == 1 {
		// No '|' at all: a truncated "OFFSET LENGTH" record is a deletion.
		rec.Deletion = true
		return rec, nil
	}

	array, err := parseHexArray(segs[1])
	if err != nil {
		return Record{}, err
	}
	if len(array) == 0 {
		rec.Deletion = true
		return rec, nil
	}
	rec.Array = array
	if !f.HasHeader() {
		rec.Length = uint64(len(array))
	}
	return rec, nil
}

// ParseHexBytes decodes a byte-literal argument such as --find's ARRAY: a
// contiguous or whitespace-separated run of hex digit pairs (e.g. "6f" or
// "68 65 6c 6c 6f"). An odd total digit count is a fatal error.
func ParseHexBytes(s string) ([]byte, error) {
	joined := strings.Join(strings.Fields(s), "")
	if len(joined)%2 != 0 {
		return nil, fmt.Errorf("hex literal %q has an odd digit count", s)
	}
	out := make([]byte, 0, len(joined)/2)
	for i := 0; i < len(joined); i += 2 {
		v, err := strconv.ParseUint(joined[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("malformed hex literal %q: %w", s, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Decoder reads successive Records from a dump/patch stream in x or nnx
// format. It is a thin wrapper over bufio.Scanner: one line in, one Record
// (or error) out.
type Decoder struct {
	f   Format
	sc  *bufio.Scanner
	err error
}

// NewDecoder returns a Decoder for format f, which must be Hex or
// HexNoHeader.
func NewDecoder(r io.Reader, f Format) (*Decoder, error) {
	if f != Hex && f != HexNoHeader {
		return nil, fmt.Errorf("NewDecoder: format %v is not a line-framed format", f)
	}
	return &Decoder{f: f, sc: bufio.NewScanner(r)}, nil
}

// Next returns the next Record. ok is false once the stream is exhausted;
// check Err afterward to distinguish clean EOF from a parse failure.
func (d *Decoder) Next() (rec Record, ok bool) {
	if d.err != nil {
		return Record{}, false
	}
	if !d.sc.Scan() {
		d.err = d.sc.Err()
		return Record{}, false
	}
	rec, err := ParseHexLine(d.f, d.sc.Text())
	if err != nil {
		d.err = err
		return Record{}, false
	}
	return rec, true
}

// Err returns the first error encountered by Next, or nil on clean EOF.
func (d *Decoder) Err() error {
	return d.err
}
