package report

import (
	"encoding/json"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/report"
)

type dashboardResponse struct {
	Inventory struct {
		TotalItems int64       `json:"total_items"`
		TotalValue json.Number `json:"total_value"`
	} `json:"inventory"`
	Sales struct {
		TotalOrders int64 `json:"total_orders"`
	} `json:"sales"`
	Purchasing struct {
		TotalOrders int64 `json:"total_orders"`
	} `json:"purchasing"`
	Invoices struct {
		TotalInvoices int64       `json:"total_invoices"`
		TotalInvoiced json.Number `json:"total_invoiced"`
		Outstanding   json.Number `json:"outstanding"`
	} `json:"invoices"`
}

type categoryResponse struct {
	Category      string      `json:"category"`
	Count         int64       `json:"count"`
	TotalQuantity json.Number `json:"total_quantity"`
	TotalValue    json.Number `json:"total_value"`
}

type statusResponse struct {
	Status      string      `json:"status"`
	Count       int64       `json:"count"`
	TotalAmount json.Number `json:"total_amount"`
}

type lowStockResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	SKU          string      `json:"sku"`
	Category     string      `json:"category"`
	Unit         string      `json:"unit"`
	Location     string      `json:"location"`
	Quantity     json.Number `json:"quantity"`
	MinimumStock json.Number `json:"minimum_stock"`
	Shortfall    json.Number `json:"shortfall"`
}

func toDashboardResponse(d *report.Dashboard) dashboardResponse {
	var resp dashboardResponse

	resp.Inventory.TotalItems = d.Inventory.TotalItems
	resp.Inventory.TotalValue = respond.Money(d.Inventory.TotalValue)
	resp.Sales.TotalOrders = d.Sales.TotalOrders
	resp.Purchasing.TotalOrders = d.Purchasing.TotalOrders
	resp.Invoices.TotalInvoices = d.Invoices.TotalInvoices
	resp.Invoices.TotalInvoiced = respond.Money(d.Invoices.TotalInvoiced)
	resp.Invoices.Outstanding = respond.Money(d.Invoices.Outstanding)

	return resp
}

func toCategoryResponse(summary []*report.CategorySummary) []categoryResponse {
	resp := make([]categoryResponse, len(summary))
	for i, s := range summary {
		resp[i] = categoryResponse{
			Category:      s.Category,
			Count:         s.Count,
			TotalQuantity: respond.Quantity(s.TotalQuantity),
			TotalValue:    respond.Money(s.TotalValue),
		}
	}

	return resp
}

func toStatusResponse(summary []*report.StatusSummary) []statusResponse {
	resp := make([]statusResponse, len(summary))
	for i, s := range summary {
		resp[i] = statusResponse{
			Status:      s.Status,
			Count:       s.Count,
			TotalAmount: respond.Money(s.TotalAmount),
		}
	}

	return resp
}

func toLowStockResponse(items []*report.LowStockItem) []lowStockResponse {
	resp := make([]lowStockResponse, len(items))
	for i, it := range items {
		resp[i] = lowStockResponse{
			ID:           it.ID,
			Name:         it.Name,
			SKU:          it.SKU,
			Category:     it.Category,
			Unit:         it.Unit,
			Location:     it.Location,
			Quantity:     respond.Quantity(it.Quantity),
			MinimumStock: respond.Quantity(it.MinimumStock),
			Shortfall:    respond.Quantity(it.Shortfall()),
		}
	}

	return resp
}
