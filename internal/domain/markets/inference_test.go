//go:build unit
// +build unit

package markets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCountryCode(t *testing.T) {
	tests := map[string]string{
		"fr":          "FR",
		" France ":    "FR",
		"Belgique":    "BE",
		"schweiz":     "CH",
		"España":      "ES",
		"Pays-Bas":    "NL",
		"Atlantis":    "",
		"":            "",
		"Deutschland": "DE",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, ExtractCountryCode(input), input)
	}
}

func TestInferMarketFromCountry(t *testing.T) {
	fr := &Market{Code: "FR", Name: "France", CurrencyCode: "EUR", IsActive: true}
	be := &Market{Code: "BE", Name: "Belgique", CurrencyCode: "EUR", IsActive: false}
	list := []*Market{fr, be}

	assert.Same(t, fr, InferMarketFromCountry("fr", list))
	assert.Nil(t, InferMarketFromCountry("BE", list), "inactive markets are never inferred")
	assert.Nil(t, InferMarketFromCountry("", list))
	assert.Same(t, fr, InferMarketFromAddress("France", list))
}

func TestDefaultCurrencyForCountry(t *testing.T) {
	assert.Equal(t, "EUR", DefaultCurrencyForCountry("fr"))
	assert.Equal(t, "CHF", DefaultCurrencyForCountry("CH"))
	assert.Equal(t, "GBP", DefaultCurrencyForCountry("UK"))
	assert.Equal(t, "", DefaultCurrencyForCountry("BR"))
}

func TestFormatMarketDisplay(t *testing.T) {
	assert.Equal(t, "Aucun marché détecté", FormatMarketDisplay(nil))
	assert.Equal(t, "FR - France (EUR)", FormatMarketDisplay(&Market{Code: "FR", Name: "France", CurrencyCode: "EUR"}))
}
