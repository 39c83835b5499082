package markets

import (
	"fmt"
	"strings"
)

var countryNameToCode = map[string]string{
	"FRANCE":      "FR",
	"BELGIUM":     "BE",
	"BELGIQUE":    "BE",
	"SWITZERLAND": "CH",
	"SUISSE":      "CH",
	"SCHWEIZ":     "CH",
	"SPAIN":       "ES",
	"ESPAGNE":     "ES",
	"ESPAÑA":      "ES",
	"GERMANY":     "DE",
	"ALLEMAGNE":   "DE",
	"DEUTSCHLAND": "DE",
	"ITALY":       "IT",
	"ITALIE":      "IT",
	"ITALIA":      "IT",
	"LUXEMBOURG":  "LU",
	"NETHERLANDS": "NL",
	"PAYS-BAS":    "NL",
	"NEDERLAND":   "NL",
	"CANADA":      "CA",
}

var countryCurrency = map[string]string{
	"FR": "EUR",
	"BE": "EUR",
	"LU": "EUR",
	"ES": "EUR",
	"IT": "EUR",
	"DE": "EUR",
	"NL": "EUR",
	"CH": "CHF",
	"CA": "CAD",
	"US": "USD",
	"GB": "GBP",
	"UK": "GBP",
}

// ExtractCountryCode turns a free-form country ("fr", "France", "España")
// into an ISO 3166-1 alpha-2 code, or "" when it is not recognised.
func ExtractCountryCode(country string) string {
	c := strings.ToUpper(strings.TrimSpace(country))
	if c == "" {
		return ""
	}
	if len([]rune(c)) == 2 {
		return c
	}
	return countryNameToCode[c]
}

// InferMarketFromCountry returns the active market whose code matches countryCode
func InferMarketFromCountry(countryCode string, markets []*Market) *Market {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return nil
	}
	for _, m := range markets {
		if m.IsActive && strings.ToUpper(m.Code) == code {
			return m
		}
	}
	return nil
}

// InferMarketFromAddress combines ExtractCountryCode and InferMarketFromCountry
func InferMarketFromAddress(country string, markets []*Market) *Market {
	return InferMarketFromCountry(ExtractCountryCode(country), markets)
}

// DefaultCurrencyForCountry returns the usual currency of a country, or ""
func DefaultCurrencyForCountry(countryCode string) string {
	return countryCurrency[strings.ToUpper(strings.TrimSpace(countryCode))]
}

// FormatMarketDisplay renders "FR - France (EUR)"
func FormatMarketDisplay(m *Market) string {
	if m == nil {
		return "Aucun marché détecté"
	}
	return fmt.Sprintf("%s - %s (%s)", m.Code, m.Name, m.CurrencyCode)
}
