package report

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/page"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	InventoryByCategory(ctx context.Context) ([]*CategorySummary, error)
	SalesByStatus(ctx context.Context) ([]*StatusSummary, error)
	LowStock(ctx context.Context, p page.Page) ([]*LowStockItem, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d, err := s.repo.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}

	return d, nil
}

func (s *Service) InventorySummary(ctx context.Context) ([]*CategorySummary, error) {
	summary, err := s.repo.InventoryByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarising inventory: %w", err)
	}

	return summary, nil
}

func (s *Service) SalesSummary(ctx context.Context) ([]*StatusSummary, error) {
	summary, err := s.repo.SalesByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarising sales: %w", err)
	}

	return summary, nil
}

func (s *Service) LowStock(ctx context.Context, p page.Page) ([]*LowStockItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.LowStock(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("listing low stock: %w", err)
	}

	return items, nil
}
