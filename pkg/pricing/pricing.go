// Package pricing formats catalog prices for display. Prices are stored
// currency-agnostic; the currency is a display-time parameter drawn from a
// fixed small set.
package pricing

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when callers pass an unknown or empty code.
const DefaultCurrency = "USD"

// All supported currencies render with en-US digit grouping for a consistent
// storefront look, matching the design of the product pages.
var printer = message.NewPrinter(language.AmericanEnglish)

var supported = map[string]currency.Unit{
	"USD": currency.USD,
	"EUR": currency.EUR,
	"GBP": currency.GBP,
}

// Format renders an amount as a currency string with exactly two fraction
// digits, e.g. Format(1299.5, "USD") == "$1,299.50". Unknown codes fall back
// to USD. There is no failure mode for in-range numeric input.
func Format(amount float64, code string) string {
	unit, ok := supported[code]
	if !ok {
		unit = supported[DefaultCurrency]
	}
	return printer.Sprint(currency.Symbol(unit)) + printer.Sprintf("%.2f", amount)
}
