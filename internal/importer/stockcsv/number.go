package stockcsv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseNumber reads a quantity or price cell. Semicolon-separated sheets use the
// European style ("1.234,56"); comma-separated ones use "1,234.56".
func parseNumber(s string, european bool) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	if european {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
