package dispfmt

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrecision renders value with a fixed number of fraction digits
// using "." as the thousands separator and "," as the decimal separator
// (the id-ID convention). The default precision is 2; a negative
// precision falls back to the default. Rounding is half away from zero
// at the last retained digit. Values that do not coerce to a number are
// returned in their string form unchanged.
func FormatPrecision(value any, precision ...int) string {
	p := 2
	if len(precision) > 0 && precision[0] >= 0 {
		p = precision[0]
	}
	f, ok := toFloat(value)
	if !ok {
		return stringify(value)
	}
	s := strconv.FormatFloat(roundHalfAway(f, p), 'f', p, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	intPart = groupDigits(intPart, ".")
	if hasFrac {
		return intPart + "," + frac
	}
	return intPart
}

// FormatBigNumber abbreviates magnitudes strictly above one thousand,
// million, or billion with a K, M, or B suffix, keeping up to three
// fraction digits with trailing zeros dropped. Values exactly at a
// threshold, and values that do not coerce to a number, are returned in
// their string form unchanged.
func FormatBigNumber(value any) string {
	f, ok := toFloat(value)
	if !ok {
		return stringify(value)
	}
	switch {
	case f > 1e9:
		return compact3(f/1e9) + "B"
	case f > 1e6:
		return compact3(f/1e6) + "M"
	case f > 1e3:
		return compact3(f/1e3) + "K"
	}
	return stringify(value)
}

// FormatThousands inserts sep as the thousands separator in the integer
// part of value's string form, leaving any fractional part untouched.
// An empty separator returns the string form unchanged.
//
// Grouping assumes a freshly stringified numeric source: output that
// already contains separators is not re-grouped, but a separator that is
// itself a digit would collide with the digits already present.
func FormatThousands(value any, sep string) string {
	s := stringify(value)
	if sep == "" {
		return s
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	intPart = groupDigits(intPart, sep)
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}

// roundHalfAway rounds f to p fraction digits, ties away from zero.
func roundHalfAway(f float64, p int) float64 {
	pow := math.Pow(10, float64(p))
	return math.Copysign(math.Floor(math.Abs(f)*pow+0.5)/pow, f)
}

// compact3 rounds to three fraction digits and prints the shortest form.
func compact3(f float64) string {
	return strconv.FormatFloat(roundHalfAway(f, 3), 'f', -1, 64)
}

// groupDigits inserts sep into s wherever the preceding byte is a digit
// and the remaining suffix is all digits with a length that is a
// positive multiple of three. A leading sign is skipped naturally, and
// suffixes interrupted by non-digits (separators from an earlier pass)
// are never split.
func groupDigits(s, sep string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && isDigit(s[i-1]) && groupBoundary(s[i:]) {
			b.WriteString(sep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func groupBoundary(rest string) bool {
	if len(rest) == 0 || len(rest)%3 != 0 {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if !isDigit(rest[i]) {
			return false
		}
	}
	return true
}
