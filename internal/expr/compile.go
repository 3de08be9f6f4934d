// Package expr implements the C-style scalar and range expression grammar
// that nd's --cut, --pad, --width, --walk, --slice, --invert, --extend,
// --lines and {(EXPR)} template fields accept: full C operator precedence and arithmetic, array-view
// indexing (b/h/i/l[expr] reading little-endian i8/i16/i32/i64 from a bound
// stream window), base-prefixed integer literals (0b/0o/0d/0x, bare leading
// 0 for octal) and SI/binary magnitude suffixes (k,M,G,E,ki,Mi,Gi,Ei).
//
// Expressions are compiled once into a small AST and evaluated repeatedly
// against an Env bound by the call site, since the scalar/walk stages
// re-evaluate the same expression for every record in a stream.
package expr

import "fmt"

// Expr is a compiled scalar expression.
type Expr struct {
	root Node
}

// Eval evaluates the expression against env.
func (x Expr) Eval(env *Env) (int64, error) {
	return x.root.eval(env)
}

// Compile parses a single scalar expression.
func Compile(src string) (Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return Expr{}, err
	}
	n, err := p.parseExpr()
	if err != nil {
		return Expr{}, err
	}
	return Expr{root: n}, nil
}

// CompileRange parses a single S or S..E range expression.
func CompileRange(src string) (Range, error) {
	p, err := newParser(src)
	if err != nil {
		return Range{}, err
	}
	r, err := p.parseRange()
	if err != nil {
		return Range{}, err
	}
	if p.cur.kind != tokEOF {
		return Range{}, fmt.Errorf("unexpected trailing input at offset %d: %q", p.cur.pos, p.cur.text)
	}
	return r, nil
}

// CompileRangeList parses a comma-separated list of S or S..E ranges.
func CompileRangeList(src string) (RangeList, error) {
	p, err := newParser(src)
	if err != nil {
		return RangeList{}, err
	}
	return p.parseRangeList()
}
