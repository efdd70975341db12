package invoice

import (
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
)

type invoiceResponse struct {
	ID                 int64          `json:"id"`
	CustomerID         int64          `json:"customer_id"`
	IssueDate          time.Time      `json:"issue_date"`
	DueDate            time.Time      `json:"due_date"`
	Status             invoice.Status `json:"status"`
	TotalAmount        json.Number    `json:"total_amount"`
	VATAmount          json.Number    `json:"vat_amount"`
	TotalAmountWithVAT json.Number    `json:"total_amount_with_vat"`
	Items              []itemResponse `json:"items"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          *time.Time     `json:"updated_at"`
}

type itemResponse struct {
	ID        int64       `json:"id"`
	InvoiceID int64       `json:"invoice_id"`
	ItemName  string      `json:"item_name"`
	Quantity  json.Number `json:"quantity"`
	UnitPrice json.Number `json:"unit_price"`
	LineTotal json.Number `json:"line_total"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	items := make([]itemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = toItemResponse(it)
	}

	return invoiceResponse{
		ID:                 inv.ID,
		CustomerID:         inv.CustomerID,
		IssueDate:          inv.IssueDate,
		DueDate:            inv.DueDate,
		Status:             inv.Status,
		TotalAmount:        respond.Money(inv.TotalAmount),
		VATAmount:          respond.Money(inv.VATAmount),
		TotalAmountWithVAT: respond.Money(inv.TotalAmountWithVAT),
		Items:              items,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func toItemResponse(it *invoice.Item) itemResponse {
	return itemResponse{
		ID:        it.ID,
		InvoiceID: it.InvoiceID,
		ItemName:  it.ItemName,
		Quantity:  respond.Quantity(it.Quantity),
		UnitPrice: respond.Money(it.UnitPrice),
		LineTotal: respond.Money(it.LineTotal),
	}
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
