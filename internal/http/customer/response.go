package customer

import (
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/customer"
)

type customerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Country   string     `json:"country"`
	TaxID     string     `json:"tax_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		Country:   c.Country,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toResponseList(customers []*customer.Customer) []customerResponse {
	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}

	return resp
}
