// Package adapters provides repository implementations for the stock feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/stock/domain/entity"
	"dashboard_backend/internal/feature/stock/usecase"
)

// stockGorm is a relational implementation of the StockRepository interface.
// It also serves the bulk importer's ticker lookup.
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository creates a new stockGorm instance.
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// ListActive returns all active stocks in sort-key order.
func (r *stockGorm) ListActive(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC, id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *stockGorm) List(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	err := r.db.WithContext(ctx).Order("sort_key ASC, id ASC").Find(&stocks).Error
	return stocks, err
}

func (r *stockGorm) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *stockGorm) FindByTicker(ctx context.Context, ticker string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *stockGorm) Create(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *stockGorm) Update(ctx context.Context, stock *entity.Stock) error {
	result := r.db.WithContext(ctx).Model(&entity.Stock{}).
		Where("id = ?", stock.ID).
		Select("Ticker", "SecondaryTicker", "Name", "EnglishName", "Sector", "MarketCap",
			"Price", "ReturnRate", "InvestmentPoints", "BusinessSegments", "IsActive", "SortKey").
		Updates(stock)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrStockNotFound
	}
	return nil
}

func (r *stockGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Stock{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrStockNotFound
	}
	return nil
}

// TickerIDs returns every known ticker mapped to its stock ID, for the bulk
// importer's skip detection.
func (r *stockGorm) TickerIDs(ctx context.Context) (map[string]uint, error) {
	var rows []struct {
		ID     uint
		Ticker string
	}
	if err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Select("id", "ticker").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.Ticker] = row.ID
	}
	return ids, nil
}

// ListByIDs returns the stocks for a portfolio's membership, keeping the
// given order.
func (r *stockGorm) ListByIDs(ctx context.Context, ids []uint) ([]entity.Stock, error) {
	if len(ids) == 0 {
		return []entity.Stock{}, nil
	}
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&stocks).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.Stock, len(stocks))
	for _, s := range stocks {
		byID[s.ID] = s
	}
	ordered := make([]entity.Stock, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}
