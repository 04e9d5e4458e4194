package dispfmt

import (
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatValue resolves a dotted/bracket property path against data and
// returns the value found there. Path segments may be bare keys ("a.b"),
// unquoted bracket segments ("a[b]", whitespace-trimmed), or quoted
// bracket segments ("a['b.c']", backslash escapes collapsed). A
// zero-length path resolves to data itself.
//
// When the data, the path, or any step of the walk is unresolvable, the
// supplied default is returned instead, or [Placeholder] when none was
// given. The walk never mutates data.
func FormatValue(data any, path string, def ...any) any {
	cur := data
	for _, key := range tokenizePath(path) {
		if !IsValid(cur) {
			cur = nil
			break
		}
		cur = access(cur, key)
	}
	if IsValid(cur) {
		return cur
	}
	if len(def) > 0 {
		return def[0]
	}
	return Placeholder
}

// FormatValueYAML decodes a YAML document (JSON is accepted too, being a
// YAML subset) and resolves path within it. Decode failures degrade the
// same way as an unresolvable path.
func FormatValueYAML(doc []byte, path string, def ...any) any {
	var data any
	if err := yaml.Unmarshal(doc, &data); err != nil {
		data = nil
	}
	return FormatValue(data, path, def...)
}

// tokenizePath splits a property-path expression into its ordered keys.
// At each position the scanner recognizes, in priority order: a bare run
// of non-separator bytes, a bracket segment (quoted or unquoted), and a
// degenerate empty token for a "." adjacent to another separator or the
// end of the path. Positions matching none of these are skipped, so a
// malformed bracket degrades into the tokens its bytes happen to form.
func tokenizePath(path string) []string {
	var toks []string
	for i := 0; i < len(path); {
		c := path[i]
		if c != '.' && c != '[' && c != ']' {
			j := i + 1
			for j < len(path) && path[j] != '.' && path[j] != '[' && path[j] != ']' {
				j++
			}
			toks = append(toks, path[i:j])
			i = j
			continue
		}
		if c == '[' {
			if tok, next, ok := scanBracket(path, i); ok {
				toks = append(toks, tok)
				i = next
				continue
			}
		}
		if c == '.' && (i+1 == len(path) || path[i+1] == '.' || path[i+1] == '[') {
			toks = append(toks, "")
		}
		i++
	}
	return toks
}

// scanBracket scans a bracket segment starting at path[i] == '['. For
// the unquoted form the content runs to the last ']' before any '[' and
// is trimmed; the quoted form is handled by scanQuoted.
func scanBracket(path string, i int) (tok string, next int, ok bool) {
	j := i + 1
	if j >= len(path) {
		return "", 0, false
	}
	if q := path[j]; q == '\'' || q == '"' {
		return scanQuoted(path, j)
	}
	end := len(path)
	if k := strings.IndexByte(path[j:], '['); k >= 0 {
		end = j + k
	}
	k := strings.LastIndexByte(path[j:end], ']')
	if k < 0 {
		return "", 0, false
	}
	k += j
	return strings.TrimSpace(path[j:k]), k + 1, true
}

// scanQuoted scans a quoted bracket segment from the opening quote at
// path[j]. A backslash escapes the byte that follows it; the closing
// quote must be immediately followed by ']'.
func scanQuoted(path string, j int) (string, int, bool) {
	q := path[j]
	var b strings.Builder
	for k := j + 1; k < len(path); {
		switch path[k] {
		case '\\':
			if k+1 >= len(path) {
				return "", 0, false
			}
			b.WriteByte(path[k+1])
			k += 2
		case q:
			if k+1 < len(path) && path[k+1] == ']' {
				return b.String(), k + 2, true
			}
			return "", 0, false
		default:
			b.WriteByte(path[k])
			k++
		}
	}
	return "", 0, false
}

// access performs one traversal step: a field, key, or indexed-element
// lookup by string key. Unsupported shapes and missing members yield
// nil. Keys are never numerically coerced except to index a slice or
// array.
func access(cur any, key string) any {
	if m, ok := cur.(map[string]any); ok {
		return m[key]
	}
	v := reflect.ValueOf(cur)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= v.Len() {
			return nil
		}
		return v.Index(idx).Interface()
	case reflect.Struct:
		f := v.FieldByName(key)
		if !f.IsValid() || !f.CanInterface() {
			return nil
		}
		return f.Interface()
	}
	return nil
}
