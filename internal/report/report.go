// Package report holds read-only aggregations over the other entities. It owns no state.
package report

import "github.com/shopspring/decimal"

type Dashboard struct {
	Inventory  InventoryStats
	Sales      OrderStats
	Purchasing OrderStats
	Invoices   InvoiceStats
}

type InventoryStats struct {
	TotalItems int64
	TotalValue decimal.Decimal
}

type OrderStats struct {
	TotalOrders int64
}

type InvoiceStats struct {
	TotalInvoices int64
	TotalInvoiced decimal.Decimal // with VAT
	Outstanding   decimal.Decimal // with VAT, excluding Paid and Cancelled
}

type CategorySummary struct {
	Category      string
	Count         int64
	TotalQuantity decimal.Decimal
	TotalValue    decimal.Decimal
}

type StatusSummary struct {
	Status      string
	Count       int64
	TotalAmount decimal.Decimal
}

// LowStockItem is an inventory item at or below its minimum stock level.
type LowStockItem struct {
	ID           int64
	Name         string
	SKU          string
	Category     string
	Unit         string
	Location     string
	Quantity     decimal.Decimal
	MinimumStock decimal.Decimal
}

// Shortfall is how much stock is needed to get back to the minimum.
func (i *LowStockItem) Shortfall() decimal.Decimal {
	return i.MinimumStock.Sub(i.Quantity)
}
