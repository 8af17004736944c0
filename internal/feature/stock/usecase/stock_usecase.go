// Package usecase implements the business logic for the stock feature.
package usecase

import (
	"context"
	"errors"

	"dashboard_backend/internal/feature/stock/domain/entity"
)

// ErrStockNotFound is returned when a stock cannot be found by ID or ticker.
var ErrStockNotFound = errors.New("stock not found")

// StockRepository abstracts the persistence layer for stock entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	ListActive(ctx context.Context) ([]entity.Stock, error)
	List(ctx context.Context) ([]entity.Stock, error)
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)
	FindByTicker(ctx context.Context, ticker string) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) error
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, id uint) error
}

// stockUsecase defines the stock read and admin mutation operations.
type stockUsecase struct {
	stocks StockRepository
}

// NewStockUsecase creates a new stockUsecase instance.
func NewStockUsecase(stocks StockRepository) *stockUsecase {
	return &stockUsecase{stocks: stocks}
}

// ListActive returns the stocks shown in the viewer, in sort-key order.
func (u *stockUsecase) ListActive(ctx context.Context) ([]entity.Stock, error) {
	return u.stocks.ListActive(ctx)
}

// List returns every stock for the admin screens.
func (u *stockUsecase) List(ctx context.Context) ([]entity.Stock, error) {
	return u.stocks.List(ctx)
}

// FindByTicker resolves one stock by its primary listing code.
func (u *stockUsecase) FindByTicker(ctx context.Context, ticker string) (*entity.Stock, error) {
	return u.stocks.FindByTicker(ctx, ticker)
}

func (u *stockUsecase) Create(ctx context.Context, stock *entity.Stock) error {
	return u.stocks.Create(ctx, stock)
}

func (u *stockUsecase) Update(ctx context.Context, stock *entity.Stock) error {
	return u.stocks.Update(ctx, stock)
}

func (u *stockUsecase) Delete(ctx context.Context, id uint) error {
	return u.stocks.Delete(ctx, id)
}
