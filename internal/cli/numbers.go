package cli

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders v with thousands separators and as many decimals as it needs,
// e.g. 7000 as "7,000".
func FormatCount(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f", v)
	}
	return printer.Sprintf("%.2f", v)
}

// FormatCurrency renders v as a dollar amount, e.g. 142620 as "$142,620".
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + FormatCount(-v)
	}
	return "$" + FormatCount(v)
}

// FormatAverage renders v rounded to a whole number with thousands separators.
func FormatAverage(v float64) string {
	return printer.Sprintf("%.0f", math.Round(v))
}
