// Package drain implements Stage 5: rendering slices to their output
// template, the patch-back loop against a rewind cache of Stage 2, and the
// pager/--inplace plumbing around both (spec.md §4.7).
package drain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ocxtal-labs/nd/internal/expr"
)

// fieldFormat is a parsed `:FMT` conversion spec — a conventional integer
// format: optional zero-pad width followed by a conversion letter. Default
// is decimal with no padding.
type fieldFormat struct {
	width int
	conv  byte // 'd', 'x', 'X', 'o', 'b'
}

func (f fieldFormat) render(v int64) string {
	var s string
	switch f.conv {
	case 'x':
		s = strconv.FormatInt(v, 16)
	case 'X':
		s = strings.ToUpper(strconv.FormatInt(v, 16))
	case 'o':
		s = strconv.FormatInt(v, 8)
	case 'b':
		s = strconv.FormatInt(v, 2)
	default:
		s = strconv.FormatInt(v, 10)
	}
	if f.width > len(s) {
		s = strings.Repeat("0", f.width-len(s)) + s
	}
	return s
}

func parseFieldFormat(spec string) (fieldFormat, error) {
	if spec == "" {
		return fieldFormat{conv: 'd'}, nil
	}
	i := 0
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}
	width := 0
	if i > 0 {
		w, err := strconv.Atoi(spec[:i])
		if err != nil {
			return fieldFormat{}, fmt.Errorf("invalid template format width %q", spec)
		}
		width = w
	}
	if i != len(spec)-1 {
		return fieldFormat{}, fmt.Errorf("invalid template format spec %q", spec)
	}
	switch spec[i] {
	case 'd', 'x', 'X', 'o', 'b':
		return fieldFormat{width: width, conv: spec[i]}, nil
	default:
		return fieldFormat{}, fmt.Errorf("unsupported template format conversion %q", spec)
	}
}

// field is one `{...}` interpolation: either a bound variable (n, l) or a
// parenthesized scalar expression.
type field struct {
	varName string // "n" or "l"; empty when expr is set
	expr    expr.Expr
	format  fieldFormat
}

// Template is a compiled --output filename template.
type Template struct {
	literals []string // len(fields)+1 literal runs, interleaved with fields
	fields   []field
}

// CompileTemplate parses a template containing `{VAR[:FMT]}` and
// `{(EXPR)[:FMT]}` interpolations, VAR ∈ {n, l}.
func CompileTemplate(src string) (Template, error) {
	var t Template
	var lit strings.Builder

	i := 0
	for i < len(src) {
		c := src[i]
		if c == '{' {
			end := strings.IndexByte(src[i:], '}')
			if end < 0 {
				return Template{}, fmt.Errorf("unterminated template field starting at offset %d", i)
			}
			body := src[i+1 : i+end]
			f, err := compileField(body)
			if err != nil {
				return Template{}, err
			}
			t.literals = append(t.literals, lit.String())
			lit.Reset()
			t.fields = append(t.fields, f)
			i += end + 1
			continue
		}
		lit.WriteByte(c)
		i++
	}
	t.literals = append(t.literals, lit.String())
	return t, nil
}

func compileField(body string) (field, error) {
	name, fmtSpec, _ := strings.Cut(body, ":")
	ff, err := parseFieldFormat(fmtSpec)
	if err != nil {
		return field{}, err
	}

	if strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")") {
		x, err := expr.Compile(name[1 : len(name)-1])
		if err != nil {
			return field{}, fmt.Errorf("invalid template expression %q: %w", name, err)
		}
		return field{expr: x, format: ff}, nil
	}

	switch name {
	case "n", "l":
		return field{varName: name, format: ff}, nil
	default:
		return field{}, fmt.Errorf("unknown template variable %q (want n, l, or (EXPR))", name)
	}
}

// Render produces the filename for the slice at stream offset n and
// sequence index l.
func (t Template) Render(n, l int64) (string, error) {
	var b strings.Builder
	env := &expr.Env{Scalars: map[string]int64{"n": n, "l": l}}
	for i, f := range t.fields {
		b.WriteString(t.literals[i])
		var v int64
		switch f.varName {
		case "n":
			v = n
		case "l":
			v = l
		default:
			ev, err := f.expr.Eval(env)
			if err != nil {
				return "", err
			}
			v = ev
		}
		b.WriteString(f.format.render(v))
	}
	b.WriteString(t.literals[len(t.literals)-1])
	return b.String(), nil
}
