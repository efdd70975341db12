package supplier

import (
	"context"

	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=supplier
type Repository interface {
	CreateSupplier(ctx context.Context, sup *Supplier) error
	GetSupplier(ctx context.Context, id int64) (*Supplier, error)
	ListSuppliers(ctx context.Context, p page.Page) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, params UpdateParams) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Phone        string `json:"phone,omitempty" validate:"max=50"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty" validate:"max=100"`
	Country      string `json:"country,omitempty" validate:"max=100"`
	TaxID        string `json:"tax_id,omitempty" validate:"max=50"`
	PaymentTerms string `json:"payment_terms,omitempty" validate:"max=100"`
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country      *string `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxID        *string `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	PaymentTerms *string `json:"payment_terms,omitempty" validate:"omitempty,max=100"`
}

// Apply copies the set fields onto sup.
func (p UpdateParams) Apply(sup *Supplier) {
	if p.Name != nil {
		sup.Name = *p.Name
	}

	if p.Email != nil {
		sup.Email = *p.Email
	}

	if p.Phone != nil {
		sup.Phone = *p.Phone
	}

	if p.Address != nil {
		sup.Address = *p.Address
	}

	if p.City != nil {
		sup.City = *p.City
	}

	if p.Country != nil {
		sup.Country = *p.Country
	}

	if p.TaxID != nil {
		sup.TaxID = *p.TaxID
	}

	if p.PaymentTerms != nil {
		sup.PaymentTerms = *p.PaymentTerms
	}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Supplier, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	country := params.Country
	if country == "" {
		country = DefaultCountry
	}

	sup := &Supplier{
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		Address:      params.Address,
		City:         params.City,
		Country:      country,
		TaxID:        params.TaxID,
		PaymentTerms: params.PaymentTerms,
	}
	if err := s.repo.CreateSupplier(ctx, sup); err != nil {
		return nil, err
	}

	return sup, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Supplier, error) {
	return s.repo.GetSupplier(ctx, id)
}

func (s *Service) List(ctx context.Context, p page.Page) ([]*Supplier, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ListSuppliers(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Supplier, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.UpdateSupplier(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteSupplier(ctx, id)
}
