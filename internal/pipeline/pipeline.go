package pipeline

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dlclark/regexp2"

	"github.com/ocxtal-labs/nd/internal/byteops"
	"github.com/ocxtal-labs/nd/internal/drain"
	"github.com/ocxtal-labs/nd/internal/expr"
	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/source"
	"github.com/ocxtal-labs/nd/internal/span"
	"github.com/ocxtal-labs/nd/internal/spanner"
	"github.com/ocxtal-labs/nd/internal/spanops"
)

// Run executes the full pipeline for opts: Stage 1 multiplexing (or the
// --inplace per-file loop), then Stage 2 through 5 once per resulting byte
// stream.
func Run(opts Options) error {
	guard := &source.StdinGuard{}

	if opts.Stage1 == Stage1Inplace {
		for _, path := range source.DedupFiles(opts.Files) {
			if err := runInplace(opts, guard, path); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := stage1(opts, guard)
	if err != nil {
		return err
	}
	return runStages2Through5(opts, guard, data, nil)
}

func runInplace(opts Options, guard *source.StdinGuard, path string) error {
	f, err := guard.Open(path)
	if err != nil {
		return err
	}
	data, err := decodeSource(f, opts.InFormat, opts.Filler)
	f.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	target := path
	return runStages2Through5(opts, guard, data, &target)
}

func stage1(opts Options, guard *source.StdinGuard) ([]byte, error) {
	switch opts.Stage1 {
	case Stage1Zip:
		// Zip reads raw bytes round-robin; dump-format decoding (if any)
		// happens per source first, same as cat, since the codec works on
		// whole sources rather than interleaved byte windows.
		readers := make([]io.Reader, len(opts.Files))
		for i, path := range opts.Files {
			f, err := guard.Open(path)
			if err != nil {
				return nil, err
			}
			d, err := decodeSource(f, opts.InFormat, opts.Filler)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			readers[i] = bytes.NewReader(d)
		}
		return source.Zip(int(opts.ZipN), readers, opts.Filler)

	default: // Stage1Cat
		sources := make([][]byte, len(opts.Files))
		for i, path := range opts.Files {
			f, err := guard.Open(path)
			if err != nil {
				return nil, err
			}
			d, err := decodeSource(f, opts.InFormat, opts.Filler)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			sources[i] = d
		}
		return source.Cat(int(opts.CatN), sources, opts.Filler)
	}
}

func runStages2Through5(opts Options, guard *source.StdinGuard, data []byte, inplaceTarget *string) error {
	s2, err := runStage2(opts, guard, data)
	if err != nil {
		return err
	}

	spans, err := runStage3(opts, guard, s2)
	if err != nil {
		return err
	}

	spans, err = runStage4(opts, s2, spans)
	if err != nil {
		return err
	}

	return runStage5(opts, s2, spans, inplaceTarget)
}

func runStage2(opts Options, guard *source.StdinGuard, data []byte) ([]byte, error) {
	s2 := data

	if opts.Cut != "" {
		rl, err := expr.CompileRangeList(opts.Cut)
		if err != nil {
			return nil, fmt.Errorf("cut: %w", err)
		}
		ranges, err := evalRangeListOrdered(rl, uint64(len(s2)))
		if err != nil {
			return nil, fmt.Errorf("cut: %w", err)
		}
		s2 = byteops.Cut(s2, ranges)
	}

	if opts.Pad != "" {
		n, m, err := parsePadArg(opts.Pad)
		if err != nil {
			return nil, err
		}
		s2, err = byteops.Pad(s2, n, m, opts.Filler)
		if err != nil {
			return nil, err
		}
	}

	if opts.Patch != "" {
		f, err := guard.Open(opts.Patch)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		dec, err := hexcodec.NewDecoder(f, hexcodec.Hex)
		if err != nil {
			return nil, err
		}
		var records []hexcodec.Record
		for {
			rec, ok := dec.Next()
			if !ok {
				break
			}
			records = append(records, rec)
		}
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("patch %s: %w", opts.Patch, err)
		}
		s2, err = byteops.Patch(s2, records)
		if err != nil {
			return nil, err
		}
	}

	return s2, nil
}

func runStage3(opts Options, guard *source.StdinGuard, s2 []byte) ([]span.Span, error) {
	switch opts.Stage3 {
	case Stage3Find:
		pattern, err := hexcodec.ParseHexBytes(opts.Find)
		if err != nil {
			return nil, fmt.Errorf("find: %w", err)
		}
		return spanner.Find(s2, pattern)

	case Stage3Walk:
		exprs, err := parseExprList(opts.Walk)
		if err != nil {
			return nil, err
		}
		return spanner.Walk(s2, exprs)

	case Stage3Slice:
		rl, err := expr.CompileRangeList(opts.Slice)
		if err != nil {
			return nil, fmt.Errorf("slice: %w", err)
		}
		return spanner.Slice(uint64(len(s2)), rl)

	case Stage3Guide:
		f, err := guard.Open(opts.Guide)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return spanner.Guide(f)

	default: // Stage3Width
		n, r, err := parseWidthArg(opts.Width)
		if err != nil {
			return nil, err
		}
		return spanner.Width(uint64(len(s2)), n, r)
	}
}

func runStage4(opts Options, s2 []byte, spans []span.Span) ([]span.Span, error) {
	var err error

	if opts.Regex != "" {
		re, rerr := regexp2.Compile(opts.Regex, regexp2.None)
		if rerr != nil {
			return nil, fmt.Errorf("regex: %w", rerr)
		}
		if spans, err = spanops.Regex(s2, spans, re); err != nil {
			return nil, err
		}
	}

	if opts.Invert != "" {
		rl, rerr := expr.CompileRangeList(opts.Invert)
		if rerr != nil {
			return nil, fmt.Errorf("invert: %w", rerr)
		}
		if spans, err = spanops.Invert(uint64(len(s2)), spans, rl); err != nil {
			return nil, err
		}
	}

	if opts.Extend != "" {
		rl, rerr := expr.CompileRangeList(opts.Extend)
		if rerr != nil {
			return nil, fmt.Errorf("extend: %w", rerr)
		}
		if spans, err = spanops.Extend(spans, rl); err != nil {
			return nil, err
		}
	}

	if opts.MergeSet {
		spans = spanops.Merge(spans, opts.MergeN)
	}

	if opts.Lines != "" {
		rl, rerr := expr.CompileRangeList(opts.Lines)
		if rerr != nil {
			return nil, fmt.Errorf("lines: %w", rerr)
		}
		if spans, err = spanops.Lines(spans, rl); err != nil {
			return nil, err
		}
	}

	return spans, nil
}

func runStage5(opts Options, s2 []byte, spans []span.Span, inplaceTarget *string) error {
	widthHint := 0
	if opts.Stage3 == Stage3Width {
		if n, _, err := parseWidthArg(opts.Width); err == nil {
			widthHint = int(n)
		}
	}

	if opts.Stage5 == Stage5PatchBack {
		raw := opts.OutFormat == hexcodec.Raw || opts.OutFormat == hexcodec.RawNoHeader
		pb := drain.NewPatchBack(opts.PatchBackCmd, raw)
		result, err := pb.Apply(s2, spans)
		if err != nil {
			return err
		}
		return writeFinal(opts, result, inplaceTarget)
	}

	if inplaceTarget != nil || opts.Output == "-" || opts.Output == "" {
		result, err := drain.RenderAll(opts.OutFormat, widthHint, s2, spans)
		if err != nil {
			return err
		}
		return writeFinal(opts, result, inplaceTarget)
	}

	tmpl, err := drain.CompileTemplate(opts.Output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	sink := drain.NewFileSink(opts.Stdout)
	if err := drain.WriteTemplated(sink, tmpl, opts.OutFormat, widthHint, s2, spans); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}

func writeFinal(opts Options, result []byte, inplaceTarget *string) error {
	if inplaceTarget != nil {
		return drain.InplaceWrite(*inplaceTarget, result)
	}
	if opts.IsTerminalStdout {
		return drain.RunPager(drain.PagerCommand(opts.PagerCmd), bytes.NewReader(result))
	}
	_, err := opts.Stdout.Write(result)
	return err
}
