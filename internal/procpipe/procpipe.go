// Package procpipe spawns a shell command and exchanges data with it over
// its stdin/stdout pipes, used by nd's --patch-back and --pager drains
// (spec.md §4.7, §5). A bidirectional child process is modeled as two
// independent pipes; the parent must drain the child's stdout concurrently
// with supplying its stdin, or a sufficiently large payload deadlocks both
// sides against full pipe buffers — one goroutine per direction, following
// the stdout-copy-and-wait shape of a conventional child-process runner
// generalized from one direction to two. Signals are not forwarded to the
// child.
package procpipe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Run spawns cmdline through the shell, writes in to its stdin on a
// separate goroutine (closing stdin when done), and concurrently reads its
// stdout to completion on the calling goroutine. It returns once both
// directions finish and the process has exited.
func Run(cmdline string, in []byte) ([]byte, error) {
	cmd := exec.Command("/bin/sh", "-c", cmdline)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("procpipe: stdin pipe for %q: %w", cmdline, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("procpipe: stdout pipe for %q: %w", cmdline, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("procpipe: start %q: %w", cmdline, err)
	}

	var writeErr error
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		_, writeErr = stdin.Write(in)
		stdin.Close()
	}()

	out, readErr := io.ReadAll(stdout)
	<-writeDone

	waitErr := cmd.Wait()

	if writeErr != nil && !isBrokenPipe(writeErr) {
		return nil, fmt.Errorf("procpipe: write to %q: %w", cmdline, writeErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("procpipe: read from %q: %w", cmdline, readErr)
	}
	if waitErr != nil {
		return nil, fmt.Errorf("procpipe: %q exited with error: %w", cmdline, waitErr)
	}
	return out, nil
}

// RunPager spawns cmdline through the shell with its stdin fed from in and
// its stdout/stderr connected directly to the controlling terminal. Unlike
// Run, the child's stdout is never captured — pager output goes straight
// to the terminal. The child exiting early (e.g. the user quit the pager)
// is clean termination, not an error.
func RunPager(cmdline string, in io.Reader) error {
	cmd := exec.Command("/bin/sh", "-c", cmdline)
	cmd.Stdin = in
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if isBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("procpipe: pager %q: %w", cmdline, err)
	}
	return nil
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
