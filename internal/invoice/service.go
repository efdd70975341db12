package invoice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter, p page.Page) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, patch Patch) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) (bool, error)

	GetItem(ctx context.Context, id int64) (*Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ItemParams struct {
	ItemName  string          `json:"item_name" validate:"required,max=255"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// UnmarshalJSON defaults an omitted quantity to 1.
func (p *ItemParams) UnmarshalJSON(data []byte) error {
	type raw ItemParams

	r := raw{Quantity: decimal.NewFromInt(1)}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	*p = ItemParams(r)

	return nil
}

type CreateParams struct {
	CustomerID int64        `json:"customer_id" validate:"gt=0"`
	IssueDate  time.Time    `json:"issue_date" validate:"required"`
	DueDate    time.Time    `json:"due_date" validate:"required,gtefield=IssueDate"`
	Status     Status       `json:"status,omitempty" validate:"max=50"`
	Items      []ItemParams `json:"items" validate:"dive"`
}

// UpdateParams carries a partial update. Nil fields are left unchanged; a non-nil
// Items slice replaces every item and recomputes the totals.
type UpdateParams struct {
	CustomerID *int64       `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	IssueDate  *time.Time   `json:"issue_date,omitempty"`
	DueDate    *time.Time   `json:"due_date,omitempty"`
	Status     *Status      `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
	Items      []ItemParams `json:"items,omitempty" validate:"omitempty,dive"`
}

type ListFilter struct {
	CustomerID *int64
}

// Patch is an UpdateParams with the item list already computed.
type Patch struct {
	CustomerID *int64
	IssueDate  *time.Time
	DueDate    *time.Time
	Status     *Status
	Items      []*Item // nil leaves items untouched
	Totals     *Totals
}

// Apply copies the set fields onto inv. It rejects a patch that would leave the
// due date before the issue date.
func (p Patch) Apply(inv *Invoice) error {
	if p.CustomerID != nil {
		inv.CustomerID = *p.CustomerID
	}

	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}

	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}

	if p.Status != nil {
		inv.Status = *p.Status
	}

	if p.Totals != nil {
		inv.TotalAmount = p.Totals.TotalAmount
		inv.VATAmount = p.Totals.VATAmount
		inv.TotalAmountWithVAT = p.Totals.TotalAmountWithVAT
		inv.Items = p.Items
	}

	if inv.DueDate.Before(inv.IssueDate) {
		return apperr.Invalid("due_date", "must not be before issue_date")
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	items, totals, err := Compute(params.Items)
	if err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = StatusDraft
	}

	inv := &Invoice{
		CustomerID:         params.CustomerID,
		IssueDate:          params.IssueDate,
		DueDate:            params.DueDate,
		Status:             status,
		TotalAmount:        totals.TotalAmount,
		VATAmount:          totals.VATAmount,
		TotalAmountWithVAT: totals.TotalAmountWithVAT,
		Items:              items,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) GetItem(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter, p page.Page) ([]*Invoice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ListInvoices(ctx, filter, p)
}

// Update applies a partial update. When only one of the dates is sent, the
// due-before-issue check needs the stored row and runs in the store under the row lock.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Invoice, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	if params.IssueDate != nil && params.DueDate != nil && params.DueDate.Before(*params.IssueDate) {
		return nil, apperr.Invalid("due_date", "must not be before issue_date")
	}

	patch := Patch{
		CustomerID: params.CustomerID,
		IssueDate:  params.IssueDate,
		DueDate:    params.DueDate,
		Status:     params.Status,
	}

	if params.Items != nil {
		items, totals, err := Compute(params.Items)
		if err != nil {
			return nil, err
		}

		patch.Items = items
		patch.Totals = &totals
	}

	return s.repo.UpdateInvoice(ctx, id, patch)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (*Invoice, error) {
	return s.Update(ctx, id, UpdateParams{Status: &status})
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteInvoice(ctx, id)
}
