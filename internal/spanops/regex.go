// Package spanops implements nd's Stage 4: regex, invert, extend, merge
// and lines, applied in that fixed order over the Stage-3 span sequence
// (spec.md §4.4).
package spanops

import (
	"github.com/dlclark/regexp2"

	"github.com/ocxtal-labs/nd/internal/span"
)

// byteRunes renders data as a string where every original byte maps to
// exactly one rune. regexp2 indexes matches in runes, not bytes; nd's
// streams are arbitrary binary data rather than valid UTF-8 text, so
// without this the rune offsets regexp2 reports would not translate back
// to byte offsets for any byte ≥ 0x80.
func byteRunes(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// Regex runs re against each input span's byte view and emits one span per
// match; matches are within-span and never cross span boundaries.
func Regex(data []byte, spans []span.Span, re *regexp2.Regexp) ([]span.Span, error) {
	var out []span.Span
	for _, s := range spans {
		view := byteRunes(data[s.Start:s.End])
		m, err := re.FindStringMatch(view)
		if err != nil {
			return nil, err
		}
		for m != nil {
			start := s.Start + uint64(m.Index)
			end := start + uint64(m.Length)
			out = append(out, span.Span{Start: start, End: end})
			m, err = re.FindNextMatch(m)
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
