package source

import (
	"fmt"
	"io"

	"github.com/ocxtal-labs/nd/internal/bytestream"
)

// Cat concatenates sources in order, padding each source's own tail with
// filler so its length is a multiple of n (n=1 means no padding).
func Cat(n int, sources [][]byte, filler byte) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cat: N must be positive, got %d", n)
	}
	var out []byte
	for _, src := range sources {
		out = append(out, src...)
		if n > 1 {
			if rem := len(src) % n; rem != 0 {
				for i := 0; i < n-rem; i++ {
					out = append(out, filler)
				}
			}
		}
	}
	return out, nil
}

// Zip reads n bytes round-robin from each reader. When a source has fewer
// than n bytes left in a round (including zero), that round's slot is
// padded independently with filler up to n bytes; zip stops once every
// source is simultaneously exhausted.
func Zip(n int, readers []io.Reader, filler byte) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("zip: N must be positive, got %d", n)
	}

	segs := make([]*bytestream.Segmenter, len(readers))
	for i, r := range readers {
		segs[i] = bytestream.New(r, n)
	}

	var out []byte
	for {
		anyData := false
		round := make([]byte, 0, n*len(segs))
		for _, seg := range segs {
			w, err := seg.Window()
			if err != nil {
				return nil, err
			}
			take := n
			if len(w) < take {
				take = len(w)
			}
			if take > 0 {
				anyData = true
			}
			round = append(round, w[:take]...)
			seg.Advance(take)
			for i := take; i < n; i++ {
				round = append(round, filler)
			}
		}
		if !anyData {
			break
		}
		out = append(out, round...)
	}
	return out, nil
}

// ReadSource reads a source fully into memory via a lookahead Segmenter,
// used for `cat` sources and any format that needs a source's full length
// up front (e.g. x-format record assembly).
func ReadSource(r io.Reader) ([]byte, error) {
	return bytestream.New(r, 64*1024).ReadAll()
}
