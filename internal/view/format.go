package view

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatNumber formats v with thousands separators and two decimals
// ("1,299.00"), as prices are shown on the cards. Halves round away from
// zero on the shortest decimal form of v, so 2.675 becomes "2.68".
func FormatNumber(v float64) string {
	return formatRounded(v, 2)
}

// FormatInt formats v rounded to a whole number with thousands separators.
func FormatInt(v float64) string {
	return formatRounded(v, 0)
}

// formatRounded supports 0 or 2 places.
func formatRounded(v float64, places int32) string {
	p := message.NewPrinter(language.AmericanEnglish)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Sprint(v)
	}
	// The rounded value is the nearest float to a number with the given
	// places, so printing it at that precision cannot round again.
	r := decimal.NewFromFloat(v).Round(places).InexactFloat64()
	if places == 0 {
		return p.Sprintf("%.0f", r)
	}
	return p.Sprintf("%.2f", r)
}
