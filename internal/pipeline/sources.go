package pipeline

import (
	"bytes"
	"io"

	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/source"
)

// decodeSource fully reads r and, if format carries dump framing, decodes
// it back into a flat byte stream via the hex codec — "a hexdump is also a
// binary patch" extends to Stage 1: feeding a previous dump back in as an
// input source.
func decodeSource(r io.Reader, format hexcodec.Format, filler byte) ([]byte, error) {
	raw, err := source.ReadSource(r)
	if err != nil {
		return nil, err
	}
	if format == hexcodec.Raw || format == hexcodec.RawNoHeader {
		return raw, nil
	}

	dec, err := hexcodec.NewDecoder(bytes.NewReader(raw), format)
	if err != nil {
		return nil, err
	}
	var records []hexcodec.Record
	for {
		rec, ok := dec.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return hexcodec.Assemble(format, records, filler)
}
