package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

// RoundTo rounds half away from zero to the given number of decimal places.
func RoundTo(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

func Round2(f float64) float64 {
	return RoundTo(f, 2)
}

// FormatMoney renders an amount with thousands separators and two decimals,
// e.g. FormatMoney(-1234.5, "USD") == "-$1,234.50". Unknown currencies are
// prefixed with their ISO code.
func FormatMoney(amount float64, currency string) string {
	d := decimal.NewFromFloat(amount).Round(2)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = "USD"
	}
	if sym, ok := currencySymbols[cur]; ok {
		b.WriteString(sym)
	} else {
		b.WriteString(cur + " ")
	}
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a percentage value (already scaled to 0..100).
func FormatPercent(f float64, places int32) string {
	return decimal.NewFromFloat(f).Round(places).StringFixed(places) + "%"
}

// FormatMonths renders a runway figure; nil means cash is not being burned.
func FormatMonths(m *float64) string {
	if m == nil {
		return "n/a"
	}
	return decimal.NewFromFloat(*m).Round(1).StringFixed(1) + " months"
}
