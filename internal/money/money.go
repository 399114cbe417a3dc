// Package money formats invoice amounts as localized currency strings.
package money

import (
	"fmt"
	"math"
	"strconv"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
}

// Format renders an amount in en-US currency style ("$1,234.50"), keyed by
// the invoice's currency code. Unknown codes fall back to "<CODE> 1,234.50".
func Format(amount float64, currency string) string {
	sign := ""
	if amount < 0 || math.Signbit(amount) {
		sign = "-"
		amount = math.Abs(amount)
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	if sym, ok := symbols[currency]; ok {
		return fmt.Sprintf("%s%s%s.%02d", sign, sym, withCommas(whole), frac)
	}
	return fmt.Sprintf("%s%s %s.%02d", sign, currency, withCommas(whole), frac)
}

func withCommas(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
