package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"PT30M", 30},
		{"PT1H30M", 90},
		{"PT2H", 120},
		{"P1DT2H", 26 * 60},
		{"PT90S", 1},
		{"PT0M", 0},
		{"30 min", 30},
		{"ca. 45 Minuten", 45},
		{"", 0},
		{"keine Angabe", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationToMinutes(tt.input))
		})
	}
}

func TestParseServings(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"4", 4},
		{"4 Portionen", 4},
		{"Serves 6", 6},
		{"vier Personen", 1},
		{"", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseServings(tt.input), "input: %q", tt.input)
	}
}

func TestExtractDecimal(t *testing.T) {
	assert.Equal(t, 240.0, ExtractDecimal("240 kcal"))
	assert.Equal(t, 12.5, ExtractDecimal("12.5g fat"))
	assert.Equal(t, 0.0, ExtractDecimal("no numbers here"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input        string
		wantAmount   float64
		wantNoAmount bool
	}{
		{"2", 2, false},
		{"0.5", 0.5, false},
		{"0,5", 0.5, false},
		{"2 EL", 2, false},
		{"", 0, true},
		{"etwas", 0, true},
	}

	for _, tt := range tests {
		amount, noAmount := ParseAmount(tt.input)
		assert.Equal(t, tt.wantAmount, amount, "input: %q", tt.input)
		assert.Equal(t, tt.wantNoAmount, noAmount, "input: %q", tt.input)
	}
}
