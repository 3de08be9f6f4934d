package drain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ocxtal-labs/nd/internal/tempfile"
)

// InplaceWrite implements the --inplace per-file state machine's write
// half: WRITE TEMP → FSYNC → RENAME, with DISCARD TEMP on any failure. The
// caller has already run READ and RUN PIPELINE; target is left byte-for-byte
// untouched unless the rename succeeds.
func InplaceWrite(target string, data []byte) (err error) {
	dir, abserr := filepath.Abs(filepath.Dir(target))
	if abserr != nil {
		return fmt.Errorf("inplace: resolve directory of %q: %w", target, abserr)
	}

	f, err := tempfile.New(tempfile.WithDir(dir), tempfile.WithName(filepath.Base(target)+".nd.tmp"))
	if err != nil {
		return fmt.Errorf("inplace: create temp file for %q: %w", target, err)
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("inplace: write temp file for %q: %w", target, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("inplace: fsync temp file for %q: %w", target, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("inplace: close temp file for %q: %w", target, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("inplace: rename temp file onto %q: %w", target, err)
	}
	return nil
}
