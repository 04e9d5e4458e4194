package dispfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls cell text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// FitCell truncates s to the given display width, appending "..." when
// there is room for it (width > 3). A width of zero or less means no
// limit. Widths are display columns, so wide runes count double.
func FitCell(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadCell pads s with spaces to the given display width using align.
// Strings already at or past the width are returned unchanged.
func PadCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// WrapCell splits s into lines no wider than width display columns.
// A width of zero or less disables wrapping.
func WrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if runewidth.StringWidth(line) == 0 && len(s) > 0 {
			// Safety: advance at least one rune to avoid an infinite loop.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}
