// Package adapters provides repository implementations for the portfolio feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/portfolio/domain/entity"
	"dashboard_backend/internal/feature/portfolio/usecase"
)

// portfolioGorm is a relational implementation of the PortfolioRepository interface.
type portfolioGorm struct {
	db *gorm.DB
}

var _ usecase.PortfolioRepository = (*portfolioGorm)(nil)

// NewPortfolioRepository creates a new portfolioGorm instance.
func NewPortfolioRepository(db *gorm.DB) *portfolioGorm {
	return &portfolioGorm{db: db}
}

func preloadStocks(db *gorm.DB) *gorm.DB {
	return db.Preload("Stocks", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (r *portfolioGorm) ListVisible(ctx context.Context, clientIDs []uint, all bool) ([]entity.Portfolio, error) {
	q := preloadStocks(r.db.WithContext(ctx)).Order("sort_key ASC, id ASC")
	if !all {
		if len(clientIDs) == 0 {
			q = q.Where("client_id IS NULL")
		} else {
			q = q.Where("client_id IS NULL OR client_id IN ?", clientIDs)
		}
	}
	var portfolios []entity.Portfolio
	if err := q.Find(&portfolios).Error; err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (r *portfolioGorm) List(ctx context.Context) ([]entity.Portfolio, error) {
	var portfolios []entity.Portfolio
	err := preloadStocks(r.db.WithContext(ctx)).
		Order("sort_key ASC, id ASC").
		Find(&portfolios).Error
	return portfolios, err
}

func (r *portfolioGorm) FindByID(ctx context.Context, id uint) (*entity.Portfolio, error) {
	var p entity.Portfolio
	if err := preloadStocks(r.db.WithContext(ctx)).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPortfolioNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *portfolioGorm) Create(ctx context.Context, p *entity.Portfolio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *portfolioGorm) Update(ctx context.Context, p *entity.Portfolio) error {
	result := r.db.WithContext(ctx).Model(&entity.Portfolio{}).
		Where("id = ?", p.ID).
		Select("Name", "ClientID", "Description", "ReturnRate", "SortKey").
		Updates(p)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPortfolioNotFound
	}
	return nil
}

func (r *portfolioGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Delete(&entity.PortfolioStock{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Portfolio{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrPortfolioNotFound
		}
		return nil
	})
}

// Activate flags one portfolio active and clears the flag on every other
// portfolio in the same client scope, in one transaction.
func (r *portfolioGorm) Activate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p entity.Portfolio
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrPortfolioNotFound
			}
			return err
		}

		scope := tx.Model(&entity.Portfolio{}).Where("id <> ?", id)
		if p.ClientID == nil {
			scope = scope.Where("client_id IS NULL")
		} else {
			scope = scope.Where("client_id = ?", *p.ClientID)
		}
		if err := scope.Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Portfolio{}).Where("id = ?", id).Update("is_active", true).Error
	})
}

// SetStocks replaces the portfolio's membership, preserving the given order.
func (r *portfolioGorm) SetStocks(ctx context.Context, portfolioID uint, stockIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Portfolio{}).Where("id = ?", portfolioID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return usecase.ErrPortfolioNotFound
		}
		if err := tx.Where("portfolio_id = ?", portfolioID).Delete(&entity.PortfolioStock{}).Error; err != nil {
			return err
		}
		if len(stockIDs) == 0 {
			return nil
		}
		rows := make([]entity.PortfolioStock, 0, len(stockIDs))
		for i, stockID := range stockIDs {
			rows = append(rows, entity.PortfolioStock{PortfolioID: portfolioID, StockID: stockID, Position: i})
		}
		return tx.Create(&rows).Error
	})
}

// DetachClient nulls the scope of a deleted client's portfolios.
func (r *portfolioGorm) DetachClient(ctx context.Context, clientID uint) error {
	return r.db.WithContext(ctx).Model(&entity.Portfolio{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error
}
