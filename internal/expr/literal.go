package expr

import (
	"fmt"
	"strconv"
	"strings"
)

var siMultiplier = map[string]int64{
	"k": 1_000,
	"M": 1_000_000,
	"G": 1_000_000_000,
	"E": 1_000_000_000_000_000_000,
	"ki": 1 << 10,
	"Mi": 1 << 20,
	"Gi": 1 << 30,
	"Ei": 1 << 60,
}

// parseLiteral parses a numeric literal token's text into a signed 64-bit
// value, applying the base prefix (0b/0o/0d/0x, bare leading 0 = octal) and
// the SI/binary magnitude suffix (k,M,G,E,ki,Mi,Gi,Ei) spec.md §3 describes.
func parseLiteral(text string) (int64, error) {
	body := text

	base := 10
	hasPrefix := true
	switch {
	case strings.HasPrefix(body, "0b") || strings.HasPrefix(body, "0B"):
		base = 2
		body = body[2:]
	case strings.HasPrefix(body, "0o") || strings.HasPrefix(body, "0O"):
		base = 8
		body = body[2:]
	case strings.HasPrefix(body, "0d") || strings.HasPrefix(body, "0D"):
		base = 10
		body = body[2:]
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		base = 16
		body = body[2:]
	case len(body) > 1 && body[0] == '0':
		base = 8
		body = body[1:]
	default:
		hasPrefix = false
	}

	// The magnitude suffix only applies to unprefixed decimal literals: "E"
	// is a valid hex digit, so a prefixed literal's trailing letters belong
	// to the digit run, not to a suffix (0xE is 14, not 0 scaled by 1e18).
	suffix := ""
	if !hasPrefix {
		for _, s := range []string{"Ei", "Gi", "Mi", "ki", "E", "G", "M", "k"} {
			if strings.HasSuffix(body, s) {
				suffix = s
				body = strings.TrimSuffix(body, s)
				break
			}
		}
	}

	body = strings.ReplaceAll(body, "_", "")
	if body == "" {
		body = "0"
	}

	v, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed numeric literal %q: %w", text, err)
	}
	n := int64(v)

	if suffix != "" {
		m, ok := siMultiplier[suffix]
		if !ok {
			return 0, fmt.Errorf("unknown magnitude suffix %q in %q", suffix, text)
		}
		n *= m
	}

	return n, nil
}
