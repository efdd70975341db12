package supplier

import (
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/supplier"
)

type supplierResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	TaxID        string     `json:"tax_id"`
	PaymentTerms string     `json:"payment_terms"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func toResponse(sup *supplier.Supplier) supplierResponse {
	return supplierResponse{
		ID:           sup.ID,
		Name:         sup.Name,
		Email:        sup.Email,
		Phone:        sup.Phone,
		Address:      sup.Address,
		City:         sup.City,
		Country:      sup.Country,
		TaxID:        sup.TaxID,
		PaymentTerms: sup.PaymentTerms,
		CreatedAt:    sup.CreatedAt,
		UpdatedAt:    sup.UpdatedAt,
	}
}

func toResponseList(suppliers []*supplier.Supplier) []supplierResponse {
	resp := make([]supplierResponse, len(suppliers))
	for i, sup := range suppliers {
		resp[i] = toResponse(sup)
	}

	return resp
}
