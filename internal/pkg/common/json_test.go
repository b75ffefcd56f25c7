package common

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, ParseJSON(`{"name": "test"}`, &v))
	assert.Equal(t, "test", v.Name)
}

func TestParseJSONStrictRejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	assert.Error(t, ParseJSONStrict(`{"name": "x", "extra": 1}`, &v))
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	err := DecodeJSON(strings.NewReader(`{"a": 1} {"b": 2}`), &v)
	assert.Error(t, err)
}

func TestQuoteJSONKeys(t *testing.T) {
	fixed := QuoteJSONKeys(`{name: "Kuchen", servings: 4}`)
	assert.Equal(t, `{"name": "Kuchen", "servings": 4}`, fixed)

	// 已加引號的鍵保持不變
	assert.Equal(t, `{"name": "x"}`, QuoteJSONKeys(`{"name": "x"}`))
}

func TestRawToString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"4 Portionen"`, "4 Portionen"},
		{`4`, "4"},
		{`2.5`, "2.5"},
		{`null`, ""},
		{``, ""},
	}

	for _, tt := range tests {
		var raw json.RawMessage
		if tt.raw != "" {
			raw = json.RawMessage(tt.raw)
		}
		assert.Equal(t, tt.want, RawToString(raw), "raw: %s", tt.raw)
	}
}

func TestFormatSteps(t *testing.T) {
	steps := []*Step{
		{Name: "Teig", Order: 1, Ingredients: []Ingredient{{Food: "Mehl"}}},
		{Order: 2},
	}

	out := FormatSteps(steps)
	assert.Contains(t, out, "1. Teig [1 ingredients]")
	assert.Contains(t, out, "2. (unnamed) [0 ingredients]")

	assert.Equal(t, []string{"Teig", ""}, StepNames(steps))
}

func TestFormatIngredients(t *testing.T) {
	out := FormatIngredients([]Ingredient{
		{Food: "Mehl", Amount: 500, Unit: "g", Note: "gesiebt"},
	})
	assert.Contains(t, out, "Mehl")
	assert.Contains(t, out, "500g")
	assert.Contains(t, out, "gesiebt")
}
