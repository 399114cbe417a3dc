package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"usd", 200, "USD", "$200.00"},
		{"eur", 200, "EUR", "€200.00"},
		{"cents", 1234.5, "EUR", "€1,234.50"},
		{"grouping", 1234567.89, "USD", "$1,234,567.89"},
		{"zero", 0, "USD", "$0.00"},
		{"negative", -42.1, "EUR", "-€42.10"},
		{"unknown code", 99.9, "GBP", "GBP 99.90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.amount, tc.currency))
		})
	}
}
