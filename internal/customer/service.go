package customer

import (
	"context"

	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	ListCustomers(ctx context.Context, p page.Page) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, id int64, params UpdateParams) (*Customer, error)
	DeleteCustomer(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty" validate:"max=100"`
	Country string `json:"country,omitempty" validate:"max=100"`
	TaxID   string `json:"tax_id,omitempty" validate:"max=50"`
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxID   *string `json:"tax_id,omitempty" validate:"omitempty,max=50"`
}

// Apply copies the set fields onto c.
func (p UpdateParams) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}

	if p.Email != nil {
		c.Email = *p.Email
	}

	if p.Phone != nil {
		c.Phone = *p.Phone
	}

	if p.Address != nil {
		c.Address = *p.Address
	}

	if p.City != nil {
		c.City = *p.City
	}

	if p.Country != nil {
		c.Country = *p.Country
	}

	if p.TaxID != nil {
		c.TaxID = *p.TaxID
	}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	country := params.Country
	if country == "" {
		country = DefaultCountry
	}

	c := &Customer{
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
		City:    params.City,
		Country: country,
		TaxID:   params.TaxID,
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) List(ctx context.Context, p page.Page) ([]*Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ListCustomers(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Customer, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.UpdateCustomer(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteCustomer(ctx, id)
}
