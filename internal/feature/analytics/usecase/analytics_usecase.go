// Package usecase implements the business logic for the analytics feature.
package usecase

import (
	"context"
	"log/slog"
	"time"

	accessentity "dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/analytics/domain/entity"
)

// ViewEventRepository abstracts the persistence layer for view events.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ViewEventRepository interface {
	Insert(ctx context.Context, event *entity.ViewEvent) error
	// CountByPortfolio aggregates views per portfolio since the given time.
	CountByPortfolio(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error)
}

// ViewCounter mirrors recorded views into the process metrics.
type ViewCounter interface {
	IncPortfolioView(portfolioID uint)
}

type analyticsUsecase struct {
	events  ViewEventRepository
	counter ViewCounter
	now     func() time.Time
}

// NewAnalyticsUsecase creates a new analyticsUsecase instance. counter may be nil.
func NewAnalyticsUsecase(events ViewEventRepository, counter ViewCounter) *analyticsUsecase {
	return &analyticsUsecase{events: events, counter: counter, now: time.Now}
}

// RecordPortfolioView appends a view row and bumps the metrics counter.
// Recording is best effort: a storage failure is logged and swallowed so the
// read path it rides on never fails.
func (u *analyticsUsecase) RecordPortfolioView(ctx context.Context, session *accessentity.Session, portfolioID uint) {
	event := &entity.ViewEvent{
		PortfolioID: portfolioID,
		AccessType:  string(session.AccessType),
		ViewedAt:    u.now(),
	}
	if session.Client != nil {
		clientID := session.Client.ID
		event.ClientID = &clientID
	}
	if err := u.events.Insert(ctx, event); err != nil {
		slog.Warn("failed to record portfolio view", "portfolioID", portfolioID, "error", err)
		return
	}
	if u.counter != nil {
		u.counter.IncPortfolioView(portfolioID)
	}
}

// PortfolioAnalytics aggregates view counts per portfolio since the given time.
func (u *analyticsUsecase) PortfolioAnalytics(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error) {
	return u.events.CountByPortfolio(ctx, since)
}
