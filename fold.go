package dispfmt

import (
	"strconv"
	"strings"
)

// FormatFoldDecimal folds a long run of zeros at the start of value's
// decimal fraction into a marker produced by renderCount. The fold
// applies only when the fraction starts with at least threshold zeros
// followed by a nonzero digit, with digits running to the end of the
// string; anything else is returned in its string form unchanged.
//
// The zero count is preserved in the marker, so the fold compresses the
// value without losing precision information: 0.0000000123 becomes
// 0.{7}123 under the curly-bracket policy.
func FormatFoldDecimal(value any, threshold int, renderCount func(count int) string) string {
	s := stringify(value)
	intPart, frac, ok := strings.Cut(s, ".")
	if !ok {
		return s
	}
	zeros := 0
	for zeros < len(frac) && frac[zeros] == '0' {
		zeros++
	}
	if zeros < threshold || zeros == len(frac) {
		return s
	}
	rest := frac[zeros:]
	for i := 0; i < len(rest); i++ {
		if !isDigit(rest[i]) {
			return s
		}
	}
	return intPart + "." + renderCount(zeros) + rest
}

// FormatFoldDecimalCurly folds the zero run into a "{count}" marker.
func FormatFoldDecimalCurly(value any, threshold int) string {
	return FormatFoldDecimal(value, threshold, func(count int) string {
		return "{" + strconv.Itoa(count) + "}"
	})
}

// FormatFoldDecimalSubscript folds the zero run into Unicode subscript
// digits, rendering 0.0000000123 as 0.₇123.
func FormatFoldDecimalSubscript(value any, threshold int) string {
	return FormatFoldDecimal(value, threshold, subscriptCount)
}

// subscriptDigits maps ASCII digits to their Unicode subscript glyphs.
var subscriptDigits = map[byte]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
}

// subscriptCount renders the decimal digits of count as subscripts.
// Bytes without a subscript glyph render as empty.
func subscriptCount(count int) string {
	digits := strconv.Itoa(count)
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if r, ok := subscriptDigits[digits[i]]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}
