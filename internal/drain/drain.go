package drain

import (
	"bytes"

	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/span"
)

// RenderSlice formats one slice's byte view (data[s.Start:s.End]) as a
// single dump line (x/nnx) or its raw bytes (b/nnb). width is the nominal
// record width used to pad a shorter-than-width array field so the mosaic
// column still aligns; pass 0 to size the field to the slice itself (no
// padding).
func RenderSlice(f hexcodec.Format, width int, data []byte, s span.Span) ([]byte, error) {
	chunk := data[s.Start:s.End]
	if f == hexcodec.Raw || f == hexcodec.RawNoHeader {
		return append([]byte(nil), chunk...), nil
	}
	w := width
	if w <= 0 {
		w = len(chunk)
	}
	line, err := hexcodec.FormatHexLine(f, s.Start, chunk, w)
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// RenderAll concatenates RenderSlice over every slice in order — the shape
// written for a non-templated (default "-") --output and under --inplace.
// --patch-back builds its own feed (see PatchBack).
func RenderAll(f hexcodec.Format, width int, data []byte, slices []span.Span) ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range slices {
		b, err := RenderSlice(f, width, data, s)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// WriteTemplated renders each slice individually, resolves its destination
// through tmpl (n = slice start offset, l = slice index), and appends the
// rendered dump/raw bytes to that destination through sink.
func WriteTemplated(sink *FileSink, tmpl Template, f hexcodec.Format, width int, data []byte, slices []span.Span) error {
	for i, s := range slices {
		name, err := tmpl.Render(int64(s.Start), int64(i))
		if err != nil {
			return err
		}
		b, err := RenderSlice(f, width, data, s)
		if err != nil {
			return err
		}
		if err := sink.Write(name, b); err != nil {
			return err
		}
	}
	return nil
}
