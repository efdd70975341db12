package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a stock-keeping unit held in a warehouse location.
type Item struct {
	ID           int64
	Name         string
	Description  string
	Category     string
	SKU          string
	Quantity     decimal.Decimal
	Unit         string
	UnitPrice    decimal.Decimal
	Location     string
	MinimumStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Value is the stock value of the item at its unit price.
func (i *Item) Value() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Round(2)
}

// LowStock reports whether the quantity has fallen to or below the minimum.
func (i *Item) LowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinimumStock)
}
