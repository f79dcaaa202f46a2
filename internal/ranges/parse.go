// Package ranges parses the event-slice range grammar and generates rebin
// bin boundaries.
//
// The grammar is a comma separated list of elements:
//
//	A-B     one range from A to B
//	A:S:B   consecutive ranges of width S from A, the last clamped to B
//	>A      from A, unbounded above
//	<A      unbounded below, up to A
//
// Whitespace is ignored and values are non-negative. Everything here is pure
// and deterministic.
package ranges

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// Unbounded marks an open side of a Range.
const Unbounded = -1.0

// MaxSteppedRanges caps how many ranges one A:S:B element may expand to.
const MaxSteppedRanges = 100000

// stepTolerance absorbs floating point error when deciding whether a stepped
// lower bound has reached the upper limit.
const stepTolerance = 1e-9

// Range is a lower/upper pair; either side may be Unbounded.
type Range struct {
	Lower float64
	Upper float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", formatBound(r.Lower), formatBound(r.Upper))
}

// List is an ordered sequence of ranges.
type List []Range

const number = `(\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)`

var (
	simplePattern  = regexp.MustCompile(`^` + number + `-` + number + `$`)
	steppedPattern = regexp.MustCompile(`^` + number + `:` + number + `:` + number + `$`)
	openPattern    = regexp.MustCompile(`^([<>])` + number + `$`)
)

// Parse parses a range string. Empty or blank input yields a nil List, which
// is distinct from a List holding one unbounded range.
func Parse(s string) (List, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	out := List{}
	for _, raw := range strings.Split(s, ",") {
		element := stripSpace(raw)
		switch {
		case simplePattern.MatchString(element):
			m := simplePattern.FindStringSubmatch(element)
			lower, upper, err := parsePair(m[1], m[2], element)
			if err != nil {
				return nil, err
			}
			out = append(out, Range{Lower: lower, Upper: upper})
		case steppedPattern.MatchString(element):
			m := steppedPattern.FindStringSubmatch(element)
			stepped, err := parseStepped(m[1], m[2], m[3], element)
			if err != nil {
				return nil, err
			}
			out = append(out, stepped...)
		case openPattern.MatchString(element):
			m := openPattern.FindStringSubmatch(element)
			v, err := parseNumber(m[2], element)
			if err != nil {
				return nil, err
			}
			if m[1] == ">" {
				out = append(out, Range{Lower: v, Upper: Unbounded})
			} else {
				out = append(out, Range{Lower: Unbounded, Upper: v})
			}
		default:
			return nil, errors.ParseError(fmt.Sprintf("cannot parse range element %q in %q", element, s)).
				WithContext("element", element).
				Build()
		}
	}
	return out, nil
}

// Bounds parses s and splits it into the lower and upper bound of every
// range. Empty input gives nil slices.
func Bounds(s string) (lower, upper []float64, err error) {
	list, err := Parse(s)
	if err != nil || list == nil {
		return nil, nil, err
	}
	lower = make([]float64, len(list))
	upper = make([]float64, len(list))
	for i, r := range list {
		lower[i] = r.Lower
		upper[i] = r.Upper
	}
	return lower, upper, nil
}

// String renders the list back into the A-B grammar.
func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, r := range l {
		switch {
		case r.Upper == Unbounded:
			parts = append(parts, ">"+formatBound(r.Lower))
		case r.Lower == Unbounded:
			parts = append(parts, "<"+formatBound(r.Upper))
		default:
			parts = append(parts, formatBound(r.Lower)+"-"+formatBound(r.Upper))
		}
	}
	return strings.Join(parts, ",")
}

func parsePair(a, b, element string) (float64, float64, error) {
	lower, err := parseNumber(a, element)
	if err != nil {
		return 0, 0, err
	}
	upper, err := parseNumber(b, element)
	if err != nil {
		return 0, 0, err
	}
	if lower > upper {
		return 0, 0, errors.ParseError(fmt.Sprintf("range %q starts at %s which is larger than its end %s",
			element, formatBound(lower), formatBound(upper))).
			WithContext("element", element).
			Build()
	}
	return lower, upper, nil
}

// parseStepped expands A:S:B with index-based bounds A + i*S so that rounding
// error does not accumulate across steps.
func parseStepped(a, s, b, element string) ([]Range, error) {
	start, stop, err := parsePair(a, b, element)
	if err != nil {
		return nil, err
	}
	step, err := parseNumber(s, element)
	if err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, errors.ParseError(fmt.Sprintf("range %q has a non-positive step", element)).
			WithContext("element", element).
			Build()
	}
	if (stop-start)/step > MaxSteppedRanges {
		return nil, errors.ParseError(fmt.Sprintf("range %q expands to more than %d slices", element, MaxSteppedRanges)).
			WithContext("element", element).
			Build()
	}

	var out []Range
	for i := 0; ; i++ {
		lower := start + float64(i)*step
		if lower >= stop-stepTolerance*step {
			break
		}
		upper := math.Min(start+float64(i+1)*step, stop)
		out = append(out, Range{Lower: lower, Upper: upper})
	}
	return out, nil
}

func parseNumber(raw, element string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, errors.ParseError(fmt.Sprintf("invalid number %q in range %q", raw, element)).
			WithCause(err).
			WithContext("element", element).
			Build()
	}
	return v, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
