package inventory

import (
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
)

type itemResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	SKU          string      `json:"sku"`
	Quantity     json.Number `json:"quantity"`
	Unit         string      `json:"unit"`
	UnitPrice    json.Number `json:"unit_price"`
	Location     string      `json:"location"`
	MinimumStock json.Number `json:"minimum_stock"`
	Value        json.Number `json:"value"`
	LowStock     bool        `json:"low_stock"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at"`
}

type importResponse struct {
	Imported int            `json:"imported"`
	Items    []itemResponse `json:"items"`
}

func toResponse(item *inventory.Item) itemResponse {
	return itemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Category:     item.Category,
		SKU:          item.SKU,
		Quantity:     respond.Quantity(item.Quantity),
		Unit:         item.Unit,
		UnitPrice:    respond.Money(item.UnitPrice),
		Location:     item.Location,
		MinimumStock: respond.Quantity(item.MinimumStock),
		Value:        respond.Money(item.Value()),
		LowStock:     item.LowStock(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toResponseList(items []*inventory.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, item := range items {
		resp[i] = toResponse(item)
	}

	return resp
}
