// Package source implements nd's Stage 1: multiplexing one or more input
// files and stdin into a single byte stream, per the cat/zip/inplace modes
// of spec.md §4.1.
package source

import (
	"fmt"
	"io"
	"os"
)

// IsStdinToken reports whether path names stdin: "-" or "/dev/stdin".
func IsStdinToken(path string) bool {
	return path == "-" || path == "/dev/stdin"
}

// StdinGuard enforces that stdin is named at most once across every
// stdin-consuming option (positional inputs, --patch, --guide): a second
// use is a fatal error reported before any stream I/O.
type StdinGuard struct {
	used bool
}

// Open opens path, routing stdin tokens through the guard. os.Stdin is
// wrapped so callers can Close it uniformly with file sources; the
// underlying process stdin is never actually closed.
func (g *StdinGuard) Open(path string) (io.ReadCloser, error) {
	if IsStdinToken(path) {
		if g.used {
			return nil, fmt.Errorf("stdin (%q) named more than once across inputs, --patch and --guide", path)
		}
		g.used = true
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// DedupFiles removes duplicate entries from an --inplace file list while
// preserving first-occurrence order, so each distinct file is processed
// exactly once.
func DedupFiles(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
