package weight

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Separator splits an event key from its weight suffix in a registration
// name.
const Separator = "."

// ErrMalformed is returned for registration names the grammar rejects.
var ErrMalformed = errors.New("malformed registration name")

// Name is the parsed form of a registration name.
//
// Explicit distinguishes the two non-error outcomes of parsing: a name whose
// suffix encoded a weight (Explicit), and a name taken verbatim as an opaque
// key at the default weight. An opaque key keeps any separator it contains,
// so "job.retry" registered once can never be re-addressed as key "job" with
// weight "retry".
type Name struct {
	Key      string
	Weight   Weight
	Explicit bool
}

var (
	// Suffix of a key.W name: a signed integer numeral.
	integerSuffix = regexp.MustCompile(`^[-+]?[0-9]+$`)

	// Integer part of a key.I.F name. The part is optional and a bare sign
	// is allowed, mirroring lenient decimal parsing ("-.5" is -0.5).
	integerPart = regexp.MustCompile(`^[-+]?[0-9]*$`)

	// Fraction part of a key.I.F name.
	fractionPart = regexp.MustCompile(`^[0-9]+$`)
)

// ParseName parses a registration name into its event key and weight.
//
// Grammar:
//
//	key          opaque key, default weight
//	key.W        W a signed integer numeral or an infinity token
//	key.I.F      decimal weight I.F, integer part optional
//
// A single-dot name whose suffix is not a numeral keeps the dot and becomes
// an opaque key at the default weight. Names with two dots must form key.I.F
// and names with three or more dots are always malformed.
func ParseName(s string) (Name, error) {
	if s == "" {
		return Name{}, fmt.Errorf("%w: empty name", ErrMalformed)
	}

	parts := strings.Split(s, Separator)
	switch len(parts) {
	case 1:
		return Name{Key: s, Weight: Bottom}, nil

	case 2:
		w, ok := parseNumeral(parts[1])
		if !ok {
			// Not a weight suffix; the whole name is the key.
			return Name{Key: s, Weight: Bottom}, nil
		}
		if parts[0] == "" {
			return Name{}, fmt.Errorf("%w: empty event key in %q", ErrMalformed, s)
		}
		return Name{Key: parts[0], Weight: w, Explicit: true}, nil

	case 3:
		if !integerPart.MatchString(parts[1]) || !fractionPart.MatchString(parts[2]) {
			return Name{}, fmt.Errorf("%w: %q does not form a decimal weight", ErrMalformed, s)
		}
		if parts[0] == "" {
			return Name{}, fmt.Errorf("%w: empty event key in %q", ErrMalformed, s)
		}
		f, err := strconv.ParseFloat(parts[1]+"."+parts[2], 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Name{}, fmt.Errorf("%w: %q does not form a decimal weight", ErrMalformed, s)
		}
		return Name{Key: parts[0], Weight: Weight(f), Explicit: true}, nil

	default:
		return Name{}, fmt.Errorf("%w: %q has more than one weight segment", ErrMalformed, s)
	}
}

// Valid reports whether s satisfies the registration-name grammar.
func Valid(s string) bool {
	_, err := ParseName(s)
	return err == nil
}

// parseNumeral parses the suffix of a single-dot name. It accepts signed
// integer numerals and the infinity tokens, and rejects everything else so
// that names like "key.e" fall back to opaque-key handling.
func parseNumeral(tok string) (Weight, bool) {
	switch tok {
	case TokenTop, "+" + TokenTop:
		return Top, true
	case TokenBottom:
		return Bottom, true
	}
	if !integerSuffix.MatchString(tok) {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return Weight(f), true
}
