package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
)

// VATRate is the fixed national VAT rate applied to invoice subtotals.
var VATRate = decimal.RequireFromString("0.15")

// minorUnits is the currency precision every amount is rounded to.
const minorUnits = 2

type Totals struct {
	TotalAmount        decimal.Decimal
	VATAmount          decimal.Decimal
	TotalAmountWithVAT decimal.Decimal
}

// Compute validates the line items and derives their line totals and the invoice totals.
// Each line total is rounded to minor units before summing, so the stored subtotal is
// always exactly the sum of the stored line totals.
func Compute(params []ItemParams) ([]*Item, Totals, error) {
	if err := checkItems(params); err != nil {
		return nil, Totals{}, err
	}

	items := make([]*Item, len(params))
	total := decimal.Zero

	for i, p := range params {
		lineTotal := p.Quantity.Mul(p.UnitPrice).Round(minorUnits)
		items[i] = &Item{
			ItemName:  p.ItemName,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			LineTotal: lineTotal,
		}
		total = total.Add(lineTotal)
	}

	return items, totalsFor(total), nil
}

func totalsFor(total decimal.Decimal) Totals {
	total = total.Round(minorUnits)
	vat := CalculateTax(total)

	return Totals{
		TotalAmount:        total,
		VATAmount:          vat,
		TotalAmountWithVAT: total.Add(vat),
	}
}

func checkItems(params []ItemParams) error {
	var fields []apperr.FieldError

	for i, p := range params {
		if strings.TrimSpace(p.ItemName) == "" {
			fields = append(fields, apperr.FieldError{
				Field:   fmt.Sprintf("items[%d].item_name", i),
				Message: "this field is required",
			})
		}

		if !p.Quantity.IsPositive() {
			fields = append(fields, apperr.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be greater than 0",
			})
		}

		if p.UnitPrice.IsNegative() {
			fields = append(fields, apperr.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "must be greater than or equal to 0",
			})
		}
	}

	if len(fields) > 0 {
		return &apperr.ValidationError{Fields: fields}
	}

	return nil
}

// CalculateTax returns the VAT due on amount, rounded to minor units.
func CalculateTax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(VATRate).Round(minorUnits)
}

func CalculateTotalWithTax(amount decimal.Decimal) decimal.Decimal {
	return amount.Add(CalculateTax(amount))
}

// FormatCurrency renders amount with thousands separators, e.g. "1,234.50 SAR".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(minorUnits)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return sign + b.String() + "." + frac + " " + currency
}
