package drain

import (
	"fmt"
	"io"
	"os"
)

// FileSink caches open file handles by their rendered template name: the
// first write to a name truncates, every subsequent write appends. A
// rendered name of "-" or "" writes to stdout instead, never touching the
// cache.
type FileSink struct {
	stdout  io.Writer
	files   map[string]*os.File
	written map[string]bool
}

// NewFileSink creates a sink writing "-"/empty-named output to stdout.
func NewFileSink(stdout io.Writer) *FileSink {
	return &FileSink{
		stdout:  stdout,
		files:   make(map[string]*os.File),
		written: make(map[string]bool),
	}
}

// Write appends p to the file named by name (truncating on the first write
// to that name), or to stdout if name is "-" or empty.
func (s *FileSink) Write(name string, p []byte) error {
	if name == "-" || name == "" {
		_, err := s.stdout.Write(p)
		return err
	}

	f, ok := s.files[name]
	if !ok {
		var err error
		f, err = os.Create(name)
		if err != nil {
			return fmt.Errorf("drain: create %q: %w", name, err)
		}
		s.files[name] = f
		s.written[name] = true
	}
	if _, err := f.Write(p); err != nil {
		return fmt.Errorf("drain: write %q: %w", name, err)
	}
	return nil
}

// Close closes every cached file handle, returning the first error
// encountered (after attempting to close the rest).
func (s *FileSink) Close() error {
	var first error
	for name, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = fmt.Errorf("drain: close %q: %w", name, err)
		}
	}
	return first
}
