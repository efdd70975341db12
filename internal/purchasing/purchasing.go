package purchasing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is free-form; the constants are the values the UI offers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusOrdered   Status = "ordered"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

const DefaultCurrency = "SAR"

// Order is a purchase order placed with a supplier.
type Order struct {
	ID                   int64
	OrderNumber          string
	SupplierID           int64
	Status               Status
	TotalAmount          decimal.Decimal
	TaxAmount            decimal.Decimal
	DiscountAmount       decimal.Decimal
	Currency             string
	Notes                string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
