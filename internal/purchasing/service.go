package purchasing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/ordernum"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=purchasing
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context, p page.Page) ([]*Order, error)
	UpdateOrder(ctx context.Context, id int64, params UpdateParams) (*Order, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	OrderNumber          string          `json:"order_number,omitempty" validate:"max=50"`
	SupplierID           int64           `json:"supplier_id" validate:"gt=0"`
	Status               Status          `json:"status,omitempty" validate:"max=50"`
	TotalAmount          decimal.Decimal `json:"total_amount" validate:"gte=0"`
	TaxAmount            decimal.Decimal `json:"tax_amount" validate:"gte=0"`
	DiscountAmount       decimal.Decimal `json:"discount_amount" validate:"gte=0"`
	Currency             string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes                string          `json:"notes,omitempty"`
	OrderDate            *time.Time      `json:"order_date,omitempty"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date,omitempty"`
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	OrderNumber          *string          `json:"order_number,omitempty" validate:"omitempty,min=1,max=50"`
	SupplierID           *int64           `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	Status               *Status          `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
	TotalAmount          *decimal.Decimal `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	TaxAmount            *decimal.Decimal `json:"tax_amount,omitempty" validate:"omitempty,gte=0"`
	DiscountAmount       *decimal.Decimal `json:"discount_amount,omitempty" validate:"omitempty,gte=0"`
	Currency             *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes                *string          `json:"notes,omitempty"`
	ExpectedDeliveryDate *time.Time       `json:"expected_delivery_date,omitempty"`
	ActualDeliveryDate   *time.Time       `json:"actual_delivery_date,omitempty"`
}

// Apply copies the set fields onto o.
func (p UpdateParams) Apply(o *Order) {
	if p.OrderNumber != nil {
		o.OrderNumber = *p.OrderNumber
	}

	if p.SupplierID != nil {
		o.SupplierID = *p.SupplierID
	}

	if p.Status != nil {
		o.Status = *p.Status
	}

	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}

	if p.TaxAmount != nil {
		o.TaxAmount = *p.TaxAmount
	}

	if p.DiscountAmount != nil {
		o.DiscountAmount = *p.DiscountAmount
	}

	if p.Currency != nil {
		o.Currency = *p.Currency
	}

	if p.Notes != nil {
		o.Notes = *p.Notes
	}

	if p.ExpectedDeliveryDate != nil {
		o.ExpectedDeliveryDate = p.ExpectedDeliveryDate
	}

	if p.ActualDeliveryDate != nil {
		o.ActualDeliveryDate = p.ActualDeliveryDate
	}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	o := &Order{
		OrderNumber:          params.OrderNumber,
		SupplierID:           params.SupplierID,
		Status:               params.Status,
		TotalAmount:          params.TotalAmount,
		TaxAmount:            params.TaxAmount,
		DiscountAmount:       params.DiscountAmount,
		Currency:             params.Currency,
		Notes:                params.Notes,
		OrderDate:            now,
		ExpectedDeliveryDate: params.ExpectedDeliveryDate,
	}

	if o.OrderNumber == "" {
		o.OrderNumber = ordernum.New(ordernum.PrefixPurchase, now)
	}

	if o.Status == "" {
		o.Status = StatusPending
	}

	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}

	if params.OrderDate != nil {
		o.OrderDate = *params.OrderDate
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, p page.Page) ([]*Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ListOrders(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Order, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.UpdateOrder(ctx, id, params)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	return s.Update(ctx, id, UpdateParams{Status: &status})
}

// Receive marks the order received and stamps the actual delivery date.
func (s *Service) Receive(ctx context.Context, id int64) (*Order, error) {
	status := StatusReceived
	now := s.now().UTC()

	return s.Update(ctx, id, UpdateParams{Status: &status, ActualDeliveryDate: &now})
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteOrder(ctx, id)
}
