package dispfmt

import (
	"fmt"
	"strings"
	"time"
)

// DateTimePart is one {type, value} pair emitted by a [DateTimeFormatter].
type DateTimePart struct {
	Type  string
	Value string
}

// DateTimeFormatter renders a point in time as an ordered sequence of
// typed parts, the way Intl-style locale formatters do. Implementations
// must cover at least the "year", "month", "day", "hour", "minute", and
// "second" part types. Implementations are expected to be safe for
// concurrent use; each call is self-contained.
type DateTimeFormatter interface {
	FormatToParts(t time.Time) []DateTimePart
}

// DateTimeFormatterFunc adapts a function to [DateTimeFormatter].
type DateTimeFormatterFunc func(t time.Time) []DateTimePart

// FormatToParts calls f.
func (f DateTimeFormatterFunc) FormatToParts(t time.Time) []DateTimePart { return f(t) }

// DateTimeComponents holds the six locale-rendered datetime fields.
type DateTimeComponents struct {
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	Second string
}

// FormatDateToDateTime folds f's parts for the given Unix-millisecond
// timestamp into a [DateTimeComponents]. Parts of unrecognized type are
// ignored; when a type repeats, the last occurrence wins. An hour of
// "24" is normalized to "00".
func FormatDateToDateTime(f DateTimeFormatter, timestampMs int64) DateTimeComponents {
	var c DateTimeComponents
	for _, p := range f.FormatToParts(time.UnixMilli(timestampMs)) {
		switch p.Type {
		case "year":
			c.Year = p.Value
		case "month":
			c.Month = p.Value
		case "day":
			c.Day = p.Value
		case "hour":
			if p.Value == "24" {
				c.Hour = "00"
			} else {
				c.Hour = p.Value
			}
		case "minute":
			c.Minute = p.Value
		case "second":
			c.Second = p.Value
		}
	}
	return c
}

// FormatDateToString renders the timestamp through template, replacing
// the literal tokens YYYY, MM, DD, HH, mm, and ss with the corresponding
// component from [FormatDateToDateTime]. Matching is case-sensitive and
// left to right; substituted text is never rescanned, and all other
// template bytes pass through unchanged.
func FormatDateToString(f DateTimeFormatter, timestampMs int64, template string) string {
	c := FormatDateToDateTime(f, timestampMs)
	repl := [...]struct{ token, value string }{
		{"YYYY", c.Year},
		{"MM", c.Month},
		{"DD", c.Day},
		{"HH", c.Hour},
		{"mm", c.Minute},
		{"ss", c.Second},
	}
	var b strings.Builder
	for i := 0; i < len(template); {
		matched := false
		for _, r := range repl {
			if strings.HasPrefix(template[i:], r.token) {
				b.WriteString(r.value)
				i += len(r.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String()
}

// NewTimeFormatter returns a [DateTimeFormatter] backed by the standard
// library clock: zero-padded numeric parts on a 24-hour clock, rendered
// in loc. A nil loc means UTC.
func NewTimeFormatter(loc *time.Location) DateTimeFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return timeFormatter{loc: loc}
}

type timeFormatter struct {
	loc *time.Location
}

func (tf timeFormatter) FormatToParts(t time.Time) []DateTimePart {
	t = t.In(tf.loc)
	return []DateTimePart{
		{Type: "year", Value: fmt.Sprintf("%04d", t.Year())},
		{Type: "month", Value: fmt.Sprintf("%02d", int(t.Month()))},
		{Type: "day", Value: fmt.Sprintf("%02d", t.Day())},
		{Type: "hour", Value: fmt.Sprintf("%02d", t.Hour())},
		{Type: "minute", Value: fmt.Sprintf("%02d", t.Minute())},
		{Type: "second", Value: fmt.Sprintf("%02d", t.Second())},
	}
}
