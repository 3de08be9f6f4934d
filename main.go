// Nd is a streamed binary editor: it reads one or more files (or stdin),
// multiplexes them into a flat byte stream, slices that stream into spans,
// optionally reshapes those spans, and drains the result as a hex dump, raw
// bytes, or back through an external patch command.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/ocxtal-labs/nd/internal/drain"
	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/ndcli"
	"github.com/ocxtal-labs/nd/internal/ndconfig"
	"github.com/ocxtal-labs/nd/internal/osutil"
	"github.com/ocxtal-labs/nd/internal/pipeline"
	"github.com/ocxtal-labs/nd/internal/source"
	"github.com/ocxtal-labs/nd/logger"
	"github.com/ocxtal-labs/nd/stdin"
	"github.com/ocxtal-labs/nd/version"
)

const appHelpTemplate = `Usage:
  {{.Name}} [options...] [FILE...]

{{.Usage}}

Options:

{{range .VisibleFlags}}  {{.}}
{{end}}
Use "-" or "/dev/stdin" in place of a FILE to read from standard input.
`

func printVersion(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "%s version %s\n", c.App.Name, version.FullVersion())
}

func main() {
	cli.AppHelpTemplate = appHelpTemplate
	cli.VersionPrinter = printVersion

	app := cli.NewApp()
	app.Name = "nd"
	app.Usage = "a streamed binary editor"
	app.Version = version.Version()
	app.ErrWriter = os.Stderr
	app.Flags = flags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		os.Exit(ndcli.Report(os.Stderr, err))
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "in-format, F", Value: "b", Usage: "input dump format: b, nnb, x, nnx"},
		cli.StringFlag{Name: "out-format, f", Value: "x", Usage: "output dump format: b, nnb, x, nnx"},

		cli.Int64Flag{Name: "cat, c", Value: 1, Usage: "concatenate sources, aligning each to a multiple of N bytes"},
		cli.Int64Flag{Name: "zip, z", Usage: "interleave sources N bytes at a time"},
		cli.BoolFlag{Name: "inplace, i", Usage: "run the pipeline once per file, rewriting it in place"},

		cli.StringFlag{Name: "cut, n", Usage: "keep only RANGES of the byte stream, in the order given"},
		cli.StringFlag{Name: "pad, a", Usage: "prepend/append N,M filler bytes"},
		cli.StringFlag{Name: "patch, p", Usage: "apply a dump-format patch FILE to the byte stream"},

		cli.StringFlag{Name: "width, w", Usage: "tile the stream into N-byte spans over S..E (default 16,s..e)"},
		cli.StringFlag{Name: "find, d", Usage: "slice every occurrence of a hex-byte ARRAY"},
		cli.StringFlag{Name: "walk, k", Usage: "slice into consecutive chunks whose lengths EXPR[,...] yield"},
		cli.StringFlag{Name: "slice, r", Usage: "slice the explicit RANGES"},
		cli.StringFlag{Name: "guide, g", Usage: "read spans from a guide FILE"},

		cli.StringFlag{Name: "regex, e", Usage: "replace each span with its PCRE matches"},
		cli.StringFlag{Name: "invert, v", Usage: "replace spans with their complement over RANGES"},
		cli.StringFlag{Name: "extend, x", Usage: "extend each span by RANGES"},
		cli.Int64Flag{Name: "merge, m", Usage: "merge spans within N bytes of each other"},
		cli.StringFlag{Name: "lines, l", Usage: "keep only the spans selected by RANGES"},

		cli.StringFlag{Name: "output, o", Value: "-", Usage: "output TEMPLATE, or - for stdout"},
		cli.StringFlag{Name: "patch-back, P", Usage: "pipe slices to CMD and apply its stdout as a patch"},

		cli.Int64Flag{Name: "filler", Usage: "filler byte value, 0 <= N < 256"},
		cli.StringFlag{Name: "pager", Usage: "pager command (default: $PAGER, then less -S -F -X)"},
	}
}

func run(c *cli.Context) error {
	cfg, err := ndconfig.Loader{CLI: c}.Load()
	if err != nil {
		return ndcli.New(ndcli.ARG, err)
	}

	log := logger.NewConsoleLogger(logger.NewTextPrinter(os.Stderr), os.Exit)
	log.SetLevel(logger.NOTICE)

	opts, err := resolveOptions(ndconfig.Loader{CLI: c}, cfg, log)
	if err != nil {
		return err
	}

	return pipeline.Run(opts)
}

// resolveOptions validates the exclusive-group and range-bound flags spec.md
// §6 describes and translates a Config into a pipeline.Options, the one
// place in nd that turns raw CLI input into the taxonomy of ndcli.Errors.
func resolveOptions(l ndconfig.Loader, cfg *ndconfig.Config, log logger.Logger) (pipeline.Options, error) {
	var opts pipeline.Options

	files := cfg.Files
	if len(files) == 0 {
		if !stdin.IsPipe() {
			return opts, ndcli.Errorf(ndcli.ARG, "no input files given and stdin is not a pipe")
		}
		log.Notice("no input files given, reading from stdin")
		files = []string{"-"}
	}
	opts.Files = files

	if err := checkFilesExist(files); err != nil {
		return opts, err
	}

	inFormat, err := hexcodec.ParseFormat(cfg.InFormat)
	if err != nil {
		return opts, ndcli.New(ndcli.FORMAT, err)
	}
	opts.InFormat = inFormat

	outFormat, err := hexcodec.ParseFormat(cfg.OutFormat)
	if err != nil {
		return opts, ndcli.New(ndcli.FORMAT, err)
	}
	opts.OutFormat = outFormat

	if cfg.Filler < 0 || cfg.Filler > 255 {
		return opts, ndcli.Errorf(ndcli.RESOURCE, "--filler must satisfy 0 <= N < 256, got %d", cfg.Filler)
	}
	opts.Filler = byte(cfg.Filler)
	opts.PagerCmd = cfg.Pager

	if err := resolveStage1(l, cfg, &opts); err != nil {
		return opts, err
	}

	opts.Cut = cfg.Cut
	opts.Pad = cfg.Pad
	if cfg.Patch != "" {
		if err := checkFilesExist([]string{cfg.Patch}); err != nil {
			return opts, err
		}
	}
	opts.Patch = cfg.Patch

	if err := resolveStage3(l, cfg, &opts); err != nil {
		return opts, err
	}

	opts.Regex = cfg.Regex
	opts.Invert = cfg.Invert
	opts.Extend = cfg.Extend
	if l.IsSet("merge") {
		opts.MergeSet = true
		opts.MergeN = cfg.Merge
	}
	opts.Lines = cfg.Lines

	if err := resolveStage5(l, cfg, &opts); err != nil {
		return opts, err
	}

	opts.Stdout = os.Stdout
	drainsToStdout := opts.Stage5 == pipeline.Stage5PatchBack ||
		(opts.Stage5 == pipeline.Stage5Output && (opts.Output == "-" || opts.Output == ""))
	if drainsToStdout {
		opts.IsTerminalStdout = drain.ShouldPage(os.Stdout)
	}

	return opts, nil
}

// checkFilesExist rejects a missing non-stdin path up front with a clear ARG
// error, rather than letting it surface later as a generic open failure once
// the pipeline is already partway through Stage 1.
func checkFilesExist(paths []string) error {
	for _, p := range paths {
		if source.IsStdinToken(p) {
			continue
		}
		if !osutil.FileExists(p) {
			return ndcli.Errorf(ndcli.ARG, "%s: no such file", p)
		}
	}
	return nil
}

func resolveStage1(l ndconfig.Loader, cfg *ndconfig.Config, opts *pipeline.Options) error {
	set := 0
	if l.IsSet("cat") {
		set++
	}
	if l.IsSet("zip") {
		set++
	}
	if l.IsSet("inplace") {
		set++
	}
	if set > 1 {
		return ndcli.Errorf(ndcli.ARG, "--cat, --zip and --inplace are mutually exclusive")
	}

	switch {
	case l.IsSet("zip"):
		if cfg.Zip <= 0 {
			return ndcli.Errorf(ndcli.RESOURCE, "--zip N must be positive, got %d", cfg.Zip)
		}
		opts.Stage1 = pipeline.Stage1Zip
		opts.ZipN = cfg.Zip
	case cfg.Inplace:
		opts.Stage1 = pipeline.Stage1Inplace
	default:
		if cfg.Cat <= 0 {
			return ndcli.Errorf(ndcli.RESOURCE, "--cat N must be positive, got %d", cfg.Cat)
		}
		opts.Stage1 = pipeline.Stage1Cat
		opts.CatN = cfg.Cat
	}
	return nil
}

func resolveStage3(l ndconfig.Loader, cfg *ndconfig.Config, opts *pipeline.Options) error {
	names := []string{"width", "find", "walk", "slice", "guide"}
	set := 0
	for _, n := range names {
		if l.IsSet(n) {
			set++
		}
	}
	if set > 1 {
		return ndcli.Errorf(ndcli.ARG, "--width, --find, --walk, --slice and --guide are mutually exclusive")
	}

	switch {
	case l.IsSet("find"):
		opts.Stage3 = pipeline.Stage3Find
		opts.Find = cfg.Find
	case l.IsSet("walk"):
		opts.Stage3 = pipeline.Stage3Walk
		opts.Walk = cfg.Walk
	case l.IsSet("slice"):
		opts.Stage3 = pipeline.Stage3Slice
		opts.Slice = cfg.Slice
	case l.IsSet("guide"):
		if err := checkFilesExist([]string{cfg.Guide}); err != nil {
			return err
		}
		opts.Stage3 = pipeline.Stage3Guide
		opts.Guide = cfg.Guide
	default:
		opts.Stage3 = pipeline.Stage3Width
		opts.Width = cfg.Width
	}
	return nil
}

func resolveStage5(l ndconfig.Loader, cfg *ndconfig.Config, opts *pipeline.Options) error {
	if l.IsSet("output") && l.IsSet("patch-back") {
		return ndcli.Errorf(ndcli.ARG, "--output and --patch-back are mutually exclusive")
	}

	if l.IsSet("patch-back") {
		opts.Stage5 = pipeline.Stage5PatchBack
		opts.PatchBackCmd = cfg.PatchBack
		return nil
	}

	opts.Stage5 = pipeline.Stage5Output
	opts.Output = cfg.Output
	return nil
}
