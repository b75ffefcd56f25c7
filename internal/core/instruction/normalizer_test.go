package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeApplianceSettings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "seconds with speed",
			input: "4 Sek/Stufe 5 zerkleinern",
			want:  "**4 Sek/Stufe 5** zerkleinern",
		},
		{
			name:  "minutes with temperature and reverse",
			input: "10 Min./120°C/Linkslauf/Stufe 2 kochen",
			want:  "**10 Min./120°C/Linkslauf/Stufe 2** kochen",
		},
		{
			name:  "package time keyword",
			input: "Zeit gemäß Packungsangabe/Stufe 1",
			want:  "**Zeit gemäß Packungsangabe/Stufe 1**",
		},
		{
			name:  "plain reverse slash",
			input: "30 Sek//Stufe 4",
			want:  "**30 Sek//Stufe 4**",
		},
		{
			name:  "no appliance pattern",
			input: "Den Teig 10 Minuten ruhen lassen",
			want:  "Den Teig 10 Minuten ruhen lassen",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeGlyphs(t *testing.T) {
	assert.Equal(t, "**Linkslauf** aktivieren", Normalize("\ue003 aktivieren"))
	assert.Equal(t, "Mit dem **Kochlöffel** umrühren", Normalize("Mit dem \ue019 umrühren"))
	assert.Equal(t, "**Kneten** 2 Minuten", Normalize("\ue01a 2 Minuten"))
}

func TestNormalizePhrases(t *testing.T) {
	assert.Equal(t, "**Rühraufsatz einsetzen** und mixen",
		Normalize("Rühraufsatz einsetzen und mixen"))
	assert.Equal(t, "Danach **Rühraufsatz entfernen**",
		Normalize("Danach Rühraufsatz entfernen"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"4 Sek/Stufe 5 zerkleinern",
		"10 Min./120°C/Linkslauf/Stufe 2 kochen",
		"Zeit gemäß Packungsangabe/Stufe 1",
		"Rühraufsatz einsetzen und \ue003 aktivieren",
		"Rühraufsatz entfernen",
		"ohne besondere Muster",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input: %q", input)
	}
}
