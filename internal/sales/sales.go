package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is free-form; the constants are the values the UI offers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

const DefaultCurrency = "SAR"

// Order is a sale order placed by a customer. TotalAmount is supplied by the caller
// and is not derived from any line items.
type Order struct {
	ID             int64
	OrderNumber    string
	CustomerID     int64
	Status         Status
	TotalAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Currency       string
	Notes          string
	OrderDate      time.Time
	DeliveryDate   *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
