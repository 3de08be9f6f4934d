package expr

import "fmt"

// arrayWidths maps the array-view identifiers to their element size in
// bytes, per spec.md §3: b/h/i/l are i8/i16/i32/i64 views over a stream
// window.
var arrayWidths = map[string]int{
	"b": 1,
	"h": 2,
	"i": 4,
	"l": 8,
}

// Env binds the identifiers a compiled expression may reference. Only the
// call site decides which identifiers are in scope; an Env with a nil
// Scalars entry or nil Window simply makes the corresponding identifier
// unresolvable, which is a fatal evaluation error (spec.md §4.6: "only
// those bound by the call site are in scope").
type Env struct {
	// Scalars holds plain identifier bindings: s, e, n, l (as slice index),
	// or any other bound scalar.
	Scalars map[string]int64

	// Window, if non-nil, backs indexed array-view identifiers (b/h/i/l)
	// as little-endian i8/i16/i32/i64 views over the stream bytes starting
	// at WindowBase.
	Window     []byte
	WindowBase uint64
}

func (e *Env) scalar(name string) (int64, error) {
	if e == nil || e.Scalars == nil {
		return 0, fmt.Errorf("identifier %q not in scope here", name)
	}
	v, ok := e.Scalars[name]
	if !ok {
		return 0, fmt.Errorf("identifier %q not in scope here", name)
	}
	return v, nil
}

func (e *Env) index(name string, i int64) (int64, error) {
	width, ok := arrayWidths[name]
	if !ok {
		return 0, fmt.Errorf("identifier %q cannot be indexed", name)
	}
	if e == nil || e.Window == nil {
		return 0, fmt.Errorf("array view %q not in scope here", name)
	}
	if i < 0 {
		return 0, fmt.Errorf("negative array index %d into %s[]", i, name)
	}

	off := uint64(i) * uint64(width)
	if off+uint64(width) > uint64(len(e.Window)) {
		return 0, fmt.Errorf("index %d out of range for %s[] (window holds %d elements)", i, name, len(e.Window)/width)
	}

	var v uint64
	for k := 0; k < width; k++ {
		v |= uint64(e.Window[off+uint64(k)]) << (8 * k)
	}

	switch width {
	case 1:
		return int64(int8(v)), nil
	case 2:
		return int64(int16(v)), nil
	case 4:
		return int64(int32(v)), nil
	default:
		return int64(v), nil
	}
}
