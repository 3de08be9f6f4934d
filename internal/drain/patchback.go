package drain

import (
	"bytes"
	"fmt"

	"github.com/ocxtal-labs/nd/internal/byteops"
	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/procpipe"
	"github.com/ocxtal-labs/nd/internal/span"
)

// PatchBack spawns cmdline once per pipeline run, feeds it the drained
// slices, and applies its stdout as a patch stream to the Stage-2 rewind
// cache (spec.md §4.7). The feed format follows out-format: x/nnx slices
// are written as dump lines with a header (so the child sees offsets even
// under nnx, since it must be able to emit a coherent patch back); b/nnb
// slices are written as raw bytes, and the child's entire stdout is then
// taken as a literal replacement of the cache (raw format carries no
// offsets to patch against).
type PatchBack struct {
	cmdline string
	raw     bool
}

// NewPatchBack constructs a PatchBack. raw selects the b/nnb feed format;
// otherwise slices are fed as x dump lines.
func NewPatchBack(cmdline string, raw bool) *PatchBack {
	return &PatchBack{cmdline: cmdline, raw: raw}
}

// Apply feeds the byte view of each slice (taken from cache) to cmdline and
// returns the result of applying its response to cache.
func (p *PatchBack) Apply(cache []byte, slices []span.Span) ([]byte, error) {
	feed, err := p.format(cache, slices)
	if err != nil {
		return nil, err
	}

	resp, err := procpipe.Run(p.cmdline, feed)
	if err != nil {
		return nil, fmt.Errorf("patch-back %q: %w", p.cmdline, err)
	}

	if p.raw {
		return resp, nil
	}

	dec, err := hexcodec.NewDecoder(bytes.NewReader(resp), hexcodec.Hex)
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
		return nil, fmt.Errorf("patch-back %q: malformed patch response: %w", p.cmdline, err)
	}
	return byteops.Patch(cache, records)
}

func (p *PatchBack) format(cache []byte, slices []span.Span) ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range slices {
		data := cache[s.Start:s.End]
		if p.raw {
			buf.Write(data)
			continue
		}
		line, err := hexcodec.FormatHexLine(hexcodec.Hex, s.Start, data, len(data))
		if err != nil {
			return nil, err
		}
		buf.WriteString(line)
	}
	return buf.Bytes(), nil
}
