// Package ndconfig binds nd's CLI surface (spec.md §6) onto a plain struct
// using reflection-driven `cli:"..."` tags, the same tagging convention a
// buildkite-agent-style Loader uses to bridge urfave/cli flags onto a
// configuration struct.
package ndconfig

// Config holds the fully-parsed CLI surface for one pipeline run. Fields
// are populated by Loader.Load from a *cli.Context; stage fields default
// to their zero value when the corresponding flag was never set, and
// IsSet indicates which exclusive-group flag (if any) was actually passed.
type Config struct {
	Files []string `cli:"arg:*"`

	InFormat  string `cli:"in-format"`
	OutFormat string `cli:"out-format"`

	// Stage 1 (exclusive)
	Cat     int64 `cli:"cat"`
	Zip     int64 `cli:"zip"`
	Inplace bool  `cli:"inplace"`

	// Stage 2 (in order)
	Cut   string `cli:"cut"`
	Pad   string `cli:"pad"`
	Patch string `cli:"patch"`

	// Stage 3 (exclusive)
	Width string `cli:"width"`
	Find  string `cli:"find"`
	Walk  string `cli:"walk"`
	Slice string `cli:"slice"`
	Guide string `cli:"guide"`

	// Stage 4 (in order)
	Regex  string `cli:"regex"`
	Invert string `cli:"invert"`
	Extend string `cli:"extend"`
	Merge  int64  `cli:"merge"`
	Lines  string `cli:"lines"`

	// Stage 5 (exclusive)
	Output    string `cli:"output"`
	PatchBack string `cli:"patch-back"`

	Filler int64  `cli:"filler"`
	Pager  string `cli:"pager"`
}
