package supplier

import "time"

const DefaultCountry = "Saudi Arabia"

// Supplier is a vendor purchase orders are placed with.
type Supplier struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Address      string
	City         string
	Country      string
	TaxID        string
	PaymentTerms string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
