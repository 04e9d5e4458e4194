// Package dispfmt provides display-formatting primitives for rendering
// arbitrary, loosely-typed data values as human-readable strings.
//
// The package is built for UI layers that receive nested records, numbers,
// and timestamps of unknown shape and must render something sensible even
// when the data is missing or malformed. Every function is pure and
// synchronous, and none of them returns an error: malformed input degrades
// to a documented fallback, never a panic.
//
// # Path Resolution
//
// [FormatValue] tokenizes a dotted/bracket property path and walks a nested
// value:
//
//	dispfmt.FormatValue(data, "user.addresses[0]['zip code']")
//
// Unresolvable paths return the supplied default, or [Placeholder] when none
// is given. [FormatValueYAML] does the same against a raw YAML (or JSON)
// document.
//
// # Numbers
//
// [FormatPrecision] renders fixed-precision numbers with "." grouping and
// "," as the decimal separator. [FormatBigNumber] abbreviates large
// magnitudes with K/M/B suffixes. [FormatThousands] inserts a grouping
// separator into the integer part of a number's string form.
//
// # Zero-Run Folding
//
// [FormatFoldDecimalCurly] and [FormatFoldDecimalSubscript] compress long
// zero runs in a decimal fraction into a count marker so tiny magnitudes
// stay legible in narrow columns:
//
//	dispfmt.FormatFoldDecimalCurly(0.0000000123, 4)     // "0.{7}123"
//	dispfmt.FormatFoldDecimalSubscript(0.0000000123, 4) // "0.₇123"
//
// Both are policies over [FormatFoldDecimal], which accepts a custom count
// renderer.
//
// # Timestamps
//
// [FormatDateToDateTime] and [FormatDateToString] fold the typed parts
// emitted by an injected [DateTimeFormatter] into a components record or a
// templated string ("YYYY-MM-DD HH:mm:ss"). [NewTimeFormatter] is a
// ready-made implementation backed by the standard library clock.
//
// # Cells
//
// [FitCell], [PadCell], and [WrapCell] size strings to display-width
// columns, wide-rune aware.
package dispfmt
