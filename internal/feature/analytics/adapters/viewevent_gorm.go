// Package adapters provides repository implementations for the analytics feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/analytics/domain/entity"
	"dashboard_backend/internal/feature/analytics/usecase"
)

// viewEventGorm is a relational implementation of the ViewEventRepository interface.
type viewEventGorm struct {
	db *gorm.DB
}

var _ usecase.ViewEventRepository = (*viewEventGorm)(nil)

// NewViewEventRepository creates a new viewEventGorm instance.
func NewViewEventRepository(db *gorm.DB) *viewEventGorm {
	return &viewEventGorm{db: db}
}

func (r *viewEventGorm) Insert(ctx context.Context, event *entity.ViewEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *viewEventGorm) CountByPortfolio(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error) {
	var counts []entity.PortfolioViewCount
	err := r.db.WithContext(ctx).Model(&entity.ViewEvent{}).
		Select("portfolio_id, COUNT(*) AS views").
		Where("viewed_at >= ?", since).
		Group("portfolio_id").
		Order("views DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []entity.PortfolioViewCount{}
	}
	return counts, nil
}
