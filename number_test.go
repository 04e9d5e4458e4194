package dispfmt_test

import (
	"testing"

	"github.com/bjaus/dispfmt"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrecision(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value     any
		precision []int
		want      string
	}{
		"default precision":   {value: 1234.5, want: "1.234,50"},
		"explicit precision":  {value: 1234.5, precision: []int{2}, want: "1.234,50"},
		"zero precision":      {value: 1234.5, precision: []int{0}, want: "1.235"},
		"exact tie":           {value: 0.125, precision: []int{2}, want: "0,13"},
		"half away from zero": {value: 2.5, precision: []int{0}, want: "3"},
		"negative half away":  {value: -2.5, precision: []int{0}, want: "-3"},
		"negative value":      {value: -1234.5, want: "-1.234,50"},
		"millions":            {value: 1234567.891, want: "1.234.567,89"},
		"integer input":       {value: 1000000, want: "1.000.000,00"},
		"numeric string":      {value: "1234.5", want: "1.234,50"},
		"non-numeric string":  {value: "abc", want: "abc"},
		"negative precision":  {value: 1.5, precision: []int{-1}, want: "1,50"},
		"small value":         {value: 7, want: "7,00"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.FormatPrecision(tt.value, tt.precision...))
		})
	}
}

func TestFormatBigNumber(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"billions":              {value: 1500000000, want: "1.5B"},
		"millions":              {value: 1234567, want: "1.235M"},
		"thousands":             {value: 2500, want: "2.5K"},
		"trailing zeros":        {value: 1200, want: "1.2K"},
		"whole multiple":        {value: 2000, want: "2K"},
		"below threshold":       {value: 999, want: "999"},
		"boundary excluded":     {value: 1000, want: "1000"},
		"million boundary":      {value: 1000000, want: "1000K"},
		"billion boundary":      {value: 1000000000, want: "1000M"},
		"float input":           {value: 1500000000.0, want: "1.5B"},
		"numeric string":        {value: "1500000000", want: "1.5B"},
		"non-numeric string":    {value: "lots", want: "lots"},
		"negative large number": {value: -2500000, want: "-2500000"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.FormatBigNumber(tt.value))
		})
	}
}

func TestFormatThousands(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		sep   string
		want  string
	}{
		"comma":              {value: 1234567, sep: ",", want: "1,234,567"},
		"empty separator":    {value: 1234567, sep: "", want: "1234567"},
		"fraction untouched": {value: 1234.5678, sep: ",", want: "1,234.5678"},
		"period":             {value: 1234567, sep: ".", want: "1.234.567"},
		"space":              {value: 1234567, sep: " ", want: "1 234 567"},
		"short integer":      {value: 123, sep: ",", want: "123"},
		"four digits":        {value: 1234, sep: ",", want: "1,234"},
		"negative":           {value: -1234567, sep: ",", want: "-1,234,567"},
		"string input":       {value: "9876543", sep: ",", want: "9,876,543"},
		"non-numeric string": {value: "n/a", sep: ",", want: "n/a"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.FormatThousands(tt.value, tt.sep))
		})
	}
}

func TestFormatThousandsIdempotent(t *testing.T) {
	t.Parallel()
	once := dispfmt.FormatThousands(1234567, ",")
	twice := dispfmt.FormatThousands(once, ",")
	assert.Equal(t, once, twice)
}
