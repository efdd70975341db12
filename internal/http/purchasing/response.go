package purchasing

import (
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/purchasing"
)

type orderResponse struct {
	ID                   int64             `json:"id"`
	OrderNumber          string            `json:"order_number"`
	SupplierID           int64             `json:"supplier_id"`
	Status               purchasing.Status `json:"status"`
	TotalAmount          json.Number       `json:"total_amount"`
	TaxAmount            json.Number       `json:"tax_amount"`
	DiscountAmount       json.Number       `json:"discount_amount"`
	Currency             string            `json:"currency"`
	Notes                string            `json:"notes"`
	OrderDate            time.Time         `json:"order_date"`
	ExpectedDeliveryDate *time.Time        `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time        `json:"actual_delivery_date"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            *time.Time        `json:"updated_at"`
}

func toResponse(o *purchasing.Order) orderResponse {
	return orderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		SupplierID:           o.SupplierID,
		Status:               o.Status,
		TotalAmount:          respond.Money(o.TotalAmount),
		TaxAmount:            respond.Money(o.TaxAmount),
		DiscountAmount:       respond.Money(o.DiscountAmount),
		Currency:             o.Currency,
		Notes:                o.Notes,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		ActualDeliveryDate:   o.ActualDeliveryDate,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func toResponseList(orders []*purchasing.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
