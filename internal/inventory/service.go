package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	CreateItems(ctx context.Context, items []*Item) error
	GetItem(ctx context.Context, id int64) (*Item, error)
	ListItems(ctx context.Context, p page.Page) ([]*Item, error)
	UpdateItem(ctx context.Context, id int64, params UpdateParams) (*Item, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category" validate:"required,max=100"`
	SKU          string          `json:"sku" validate:"required,max=100"`
	Quantity     decimal.Decimal `json:"quantity" validate:"gte=0"`
	Unit         string          `json:"unit" validate:"required,max=50"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Location     string          `json:"location,omitempty" validate:"max=255"`
	MinimumStock decimal.Decimal `json:"minimum_stock" validate:"gte=0"`
}

func (p CreateParams) item() *Item {
	return &Item{
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		UnitPrice:    p.UnitPrice,
		Location:     p.Location,
		MinimumStock: p.MinimumStock,
	}
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	SKU          *string          `json:"sku,omitempty" validate:"omitempty,min=1,max=100"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit         *string          `json:"unit,omitempty" validate:"omitempty,min=1,max=50"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Location     *string          `json:"location,omitempty" validate:"omitempty,max=255"`
	MinimumStock *decimal.Decimal `json:"minimum_stock,omitempty" validate:"omitempty,gte=0"`
}

// Apply copies the set fields onto item.
func (p UpdateParams) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}

	if p.Description != nil {
		item.Description = *p.Description
	}

	if p.Category != nil {
		item.Category = *p.Category
	}

	if p.SKU != nil {
		item.SKU = *p.SKU
	}

	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}

	if p.Unit != nil {
		item.Unit = *p.Unit
	}

	if p.UnitPrice != nil {
		item.UnitPrice = *p.UnitPrice
	}

	if p.Location != nil {
		item.Location = *p.Location
	}

	if p.MinimumStock != nil {
		item.MinimumStock = *p.MinimumStock
	}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	item := params.item()
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, p page.Page) ([]*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ListItems(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Item, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.UpdateItem(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteItem(ctx, id)
}

// Import validates every row and stores them all in one transaction. A single bad
// row or a duplicate SKU rejects the whole batch.
func (s *Service) Import(ctx context.Context, rows []CreateParams) ([]*Item, error) {
	items, err := importItems(rows)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// ValidateImport runs the row checks Import applies before touching the store. SKUs
// that already exist in the database are only caught by Import.
func ValidateImport(rows []CreateParams) error {
	_, err := importItems(rows)
	return err
}

func importItems(rows []CreateParams) ([]*Item, error) {
	if len(rows) == 0 {
		return nil, apperr.Invalid("file", "contains no inventory rows")
	}

	var fields []apperr.FieldError

	seen := make(map[string]int, len(rows))
	items := make([]*Item, len(rows))

	for i, row := range rows {
		prefix := fmt.Sprintf("rows[%d].", i)

		if err := validate.Struct(row); err != nil {
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				return nil, err
			}

			for _, f := range ve.Fields {
				fields = append(fields, apperr.FieldError{Field: prefix + f.Field, Message: f.Message})
			}
		}

		if first, ok := seen[row.SKU]; ok && row.SKU != "" {
			fields = append(fields, apperr.FieldError{
				Field:   prefix + "sku",
				Message: fmt.Sprintf("duplicates rows[%d]", first),
			})
		} else {
			seen[row.SKU] = i
		}

		items[i] = row.item()
	}

	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	return items, nil
}
