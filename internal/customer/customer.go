package customer

import "time"

const DefaultCountry = "Saudi Arabia"

type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	TaxID     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
