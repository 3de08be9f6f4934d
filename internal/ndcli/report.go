package ndcli

import (
	"errors"
	"fmt"
	"io"
)

const usageHint = " (see: nd --help)"

// Report writes err to w in the pipeline's "error: ..." style, appending a
// usage hint when err (or anything it wraps) is an ARG error, and returns
// the process exit code to use. A nil err reports nothing and returns 0.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	msg := err.Error()

	var nerr *Error
	if errors.As(err, &nerr) && nerr.Category == ARG {
		msg += usageHint
	}
	fmt.Fprintf(w, "error: %s\n", msg)

	if errors.As(err, &nerr) {
		return nerr.ExitCode()
	}
	return 1
}
