// Package pipeline wires the five stages (multiplexer, byte-ops, slicer,
// slice-ops, drain) into the single forward run spec.md describes, given
// an already-validated, already-resolved set of Options (exclusive-group
// selection is main.go's job, via ndcli/ndconfig; this package just drives
// the stages in their fixed order).
package pipeline

import (
	"io"

	"github.com/ocxtal-labs/nd/internal/hexcodec"
)

// Stage1Mode selects the multiplexer mode (spec.md §4.1).
type Stage1Mode int

const (
	Stage1Cat Stage1Mode = iota
	Stage1Zip
	Stage1Inplace
)

// Stage3Mode selects the slicer mode (spec.md §4.3).
type Stage3Mode int

const (
	Stage3Width Stage3Mode = iota
	Stage3Find
	Stage3Walk
	Stage3Slice
	Stage3Guide
)

// Stage5Mode selects the drain mode (spec.md §4.7).
type Stage5Mode int

const (
	Stage5Output Stage5Mode = iota
	Stage5PatchBack
)

// Options is the fully-resolved configuration for one pipeline run (or,
// under --inplace, one per file). Every raw sub-argument is carried as the
// CLI string the user supplied; an empty string means the option was not
// given. Mode fields carry which mutually-exclusive option of each stage
// was selected (with Stage3Width/Stage5Output as the spec's defaults).
type Options struct {
	Files     []string
	InFormat  hexcodec.Format
	OutFormat hexcodec.Format
	Filler    byte

	Stage1 Stage1Mode
	CatN   int64
	ZipN   int64

	Cut   string
	Pad   string
	Patch string

	Stage3 Stage3Mode
	Width  string
	Find   string
	Walk   string
	Slice  string
	Guide  string

	Regex    string
	Invert   string
	Extend   string
	MergeSet bool
	MergeN   int64
	Lines    string

	Stage5       Stage5Mode
	Output       string
	PatchBackCmd string

	PagerCmd         string
	Stdout           io.Writer
	IsTerminalStdout bool
}
