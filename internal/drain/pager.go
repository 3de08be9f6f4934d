package drain

import (
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/ocxtal-labs/nd/internal/procpipe"
)

const defaultPager = "less -S -F -X"

// PagerCommand resolves the pager command line by precedence: an explicit
// --pager option, then the PAGER environment variable, then a built-in
// default.
func PagerCommand(optPager string) string {
	if optPager != "" {
		return optPager
	}
	if env := os.Getenv("PAGER"); env != "" {
		return env
	}
	return defaultPager
}

// ShouldPage reports whether stdout is a terminal, i.e. whether output
// should be piped through a pager rather than written directly.
func ShouldPage(out *os.File) bool {
	return terminal.IsTerminal(int(out.Fd()))
}

// RunPager pipes in through the resolved pager command, with the pager's
// own stdout/stderr connected directly to the terminal.
func RunPager(cmdline string, in io.Reader) error {
	return procpipe.RunPager(cmdline, in)
}
