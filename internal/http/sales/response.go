package sales

import (
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/sales"
)

type orderResponse struct {
	ID             int64        `json:"id"`
	OrderNumber    string       `json:"order_number"`
	CustomerID     int64        `json:"customer_id"`
	Status         sales.Status `json:"status"`
	TotalAmount    json.Number  `json:"total_amount"`
	TaxAmount      json.Number  `json:"tax_amount"`
	DiscountAmount json.Number  `json:"discount_amount"`
	Currency       string       `json:"currency"`
	Notes          string       `json:"notes"`
	OrderDate      time.Time    `json:"order_date"`
	DeliveryDate   *time.Time   `json:"delivery_date"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      *time.Time   `json:"updated_at"`
}

func toResponse(o *sales.Order) orderResponse {
	return orderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		Status:         o.Status,
		TotalAmount:    respond.Money(o.TotalAmount),
		TaxAmount:      respond.Money(o.TaxAmount),
		DiscountAmount: respond.Money(o.DiscountAmount),
		Currency:       o.Currency,
		Notes:          o.Notes,
		OrderDate:      o.OrderDate,
		DeliveryDate:   o.DeliveryDate,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toResponseList(orders []*sales.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
