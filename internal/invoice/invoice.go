package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is an open string; the constants are the values the UI knows about.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSent      Status = "Sent"
	StatusPaid      Status = "Paid"
	StatusOverdue   Status = "Overdue"
	StatusCancelled Status = "Cancelled"
)

// Invoice is a customer invoice. TotalAmount is the pre-tax sum of its item line totals.
type Invoice struct {
	ID                 int64
	CustomerID         int64
	IssueDate          time.Time
	DueDate            time.Time
	Status             Status
	TotalAmount        decimal.Decimal
	VATAmount          decimal.Decimal
	TotalAmountWithVAT decimal.Decimal
	Items              []*Item // Loaded explicitly, ordered by id
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Item is one invoice line. It is owned by its invoice and deleted with it.
type Item struct {
	ID        int64
	InvoiceID int64
	ItemName  string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
