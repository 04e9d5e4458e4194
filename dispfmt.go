package dispfmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Placeholder is returned by the resolvers when a value cannot be
// resolved and the caller supplied no default.
const Placeholder = "--"

// IsValid reports whether x holds a usable value: non-nil, and not a nil
// pointer, interface, map, slice, func, or channel.
func IsValid(x any) bool {
	if x == nil {
		return false
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

// IsNumber reports whether x is a finite real number.
func IsNumber(x any) bool {
	switch v := x.(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		f := float64(v)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// stringify renders a value the way the formatters fall back to it:
// strings pass through, floats print in plain decimal notation (never
// exponent form), nil is empty, and everything else goes through
// fmt.Sprint.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// toFloat coerces v to a float64. Strings are parsed after trimming
// surrounding whitespace. Booleans, nil, and composite values are not
// numbers. NaN and infinities report false.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		f := float64(x)
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
