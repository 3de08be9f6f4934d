package hexcodec

import (
	"fmt"
	"io"
	"strings"
)

const (
	offsetDigits = 12
	lengthDigits = 4
)

func mosaicByte(b byte) byte {
	if b < 0x20 || b >= 0x7f {
		return '.'
	}
	return b
}

// FormatHexLine renders one x/nnx dump line for data, the bytes at absolute
// stream offset offset. width is the nominal record width (the configured
// bytes-per-line); when data is shorter than width — as for the final,
// partial line of a stream — the array field is padded with blanks
// so the mosaic column still lines up with full-width lines above it.
func FormatHexLine(f Format, offset uint64, data []byte, width int) (string, error) {
	if f != Hex && f != HexNoHeader {
		return "", fmt.Errorf("FormatHexLine: format %v does not use line framing", f)
	}

	var b strings.Builder
	if f.HasHeader() {
		fmt.Fprintf(&b, "%0*x %0*x ", offsetDigits, offset, lengthDigits, len(data))
	}
	b.WriteByte('|')
	for _, c := range data {
		fmt.Fprintf(&b, " %02x", c)
	}
	for i := len(data); i < width; i++ {
		b.WriteString("   ")
	}
	b.WriteString(" | ")
	for _, c := range data {
		b.WriteByte(mosaicByte(c))
	}
	b.WriteByte('\n')
	return b.String(), nil
}

// WriteHexStream renders data as a sequence of width-byte dump lines
// starting at baseOffset, in the given format, writing each line to w as
// it's produced so no full-stream buffering is required.
func WriteHexStream(w io.Writer, f Format, baseOffset uint64, data []byte, width int) error {
	if width <= 0 {
		return fmt.Errorf("WriteHexStream: width must be positive, got %d", width)
	}
	for off := 0; off < len(data); off += width {
		end := off + width
		if end > len(data) {
			end = len(data)
		}
		line, err := FormatHexLine(f, baseOffset+uint64(off), data[off:end], width)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
