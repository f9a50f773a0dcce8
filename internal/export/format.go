package export

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders v with the symbol, thousands separators and two
// decimals, e.g. ₹12,345.60.
func FormatCurrency(symbol string, v float64) string {
	return symbol + groupThousands(decimal.NewFromFloat(v).StringFixed(2))
}

// FormatROAS renders a ratio as "3.20x".
func FormatROAS(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "x"
}

// FormatAmount renders v with two decimals and no grouping.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
