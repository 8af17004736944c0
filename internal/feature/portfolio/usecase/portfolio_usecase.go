// Package usecase implements the business logic for the portfolio feature.
package usecase

import (
	"context"
	"sort"
	"strings"

	accessentity "dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/portfolio/domain/entity"
	stockentity "dashboard_backend/internal/feature/stock/domain/entity"
)

// Sort orders accepted by Dashboard.
const (
	SortByReturn = "return"
	SortByName   = "name"
)

// PortfolioRepository abstracts the persistence layer for portfolios.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PortfolioRepository interface {
	// ListVisible returns portfolios whose scope is nil or in clientIDs,
	// memberships preloaded. With all set, every portfolio is returned.
	ListVisible(ctx context.Context, clientIDs []uint, all bool) ([]entity.Portfolio, error)
	List(ctx context.Context) ([]entity.Portfolio, error)
	FindByID(ctx context.Context, id uint) (*entity.Portfolio, error)
	Create(ctx context.Context, p *entity.Portfolio) error
	Update(ctx context.Context, p *entity.Portfolio) error
	Delete(ctx context.Context, id uint) error
	// Activate marks one portfolio active and deactivates the rest of its
	// client scope in the same transaction.
	Activate(ctx context.Context, id uint) error
	SetStocks(ctx context.Context, portfolioID uint, stockIDs []uint) error
	DetachClient(ctx context.Context, clientID uint) error
}

// StockLister resolves membership rows into stock entities in membership order.
type StockLister interface {
	ListByIDs(ctx context.Context, ids []uint) ([]stockentity.Stock, error)
}

// View is one portfolio composed for the dashboard.
type View struct {
	Portfolio entity.Portfolio
	Stocks    []stockentity.Stock

	// AggregateReturn is the sum of the constituent stocks' return rates.
	// It is the display value; the portfolio's own ReturnRate stays the
	// admin-entered figure.
	AggregateReturn float64
}

// Query narrows and orders the dashboard.
type Query struct {
	// Search keeps only stocks whose ticker or name contains the term.
	// Portfolios left without a match are dropped.
	Search string
	// Sort orders stocks within each portfolio: SortByReturn (descending)
	// or SortByName. Empty keeps membership order.
	Sort string
}

type portfolioUsecase struct {
	portfolios PortfolioRepository
	stocks     StockLister
}

// NewPortfolioUsecase creates a new portfolioUsecase instance.
func NewPortfolioUsecase(portfolios PortfolioRepository, stocks StockLister) *portfolioUsecase {
	return &portfolioUsecase{portfolios: portfolios, stocks: stocks}
}

// Dashboard assembles the portfolios visible to the session, each with its
// constituent stocks and aggregate return.
func (u *portfolioUsecase) Dashboard(ctx context.Context, session *accessentity.Session, q Query) ([]View, error) {
	clientIDs, all := session.VisibleClientIDs()
	portfolios, err := u.portfolios.ListVisible(ctx, clientIDs, all)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))

	views := make([]View, 0, len(portfolios))
	for _, p := range portfolios {
		memberIDs := make([]uint, 0, len(p.Stocks))
		for _, m := range p.Stocks {
			memberIDs = append(memberIDs, m.StockID)
		}
		stocks, err := u.stocks.ListByIDs(ctx, memberIDs)
		if err != nil {
			return nil, err
		}

		if term != "" {
			stocks = filterStocks(stocks, term)
			if len(stocks) == 0 {
				continue
			}
		}
		sortStocks(stocks, q.Sort)

		var aggregate float64
		for _, s := range stocks {
			aggregate += s.ReturnRate
		}
		views = append(views, View{Portfolio: p, Stocks: stocks, AggregateReturn: aggregate})
	}
	return views, nil
}

// Detail composes a single portfolio, visibility-checked against the session.
func (u *portfolioUsecase) Detail(ctx context.Context, session *accessentity.Session, id uint) (*View, error) {
	p, err := u.portfolios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(session, p) {
		return nil, ErrPortfolioNotFound
	}
	memberIDs := make([]uint, 0, len(p.Stocks))
	for _, m := range p.Stocks {
		memberIDs = append(memberIDs, m.StockID)
	}
	stocks, err := u.stocks.ListByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	var aggregate float64
	for _, s := range stocks {
		aggregate += s.ReturnRate
	}
	return &View{Portfolio: *p, Stocks: stocks, AggregateReturn: aggregate}, nil
}

// List returns every portfolio for the admin screens.
func (u *portfolioUsecase) List(ctx context.Context) ([]entity.Portfolio, error) {
	return u.portfolios.List(ctx)
}

func (u *portfolioUsecase) Create(ctx context.Context, p *entity.Portfolio) error {
	return u.portfolios.Create(ctx, p)
}

func (u *portfolioUsecase) Update(ctx context.Context, p *entity.Portfolio) error {
	return u.portfolios.Update(ctx, p)
}

func (u *portfolioUsecase) Delete(ctx context.Context, id uint) error {
	return u.portfolios.Delete(ctx, id)
}

// Activate highlights one portfolio and clears the flag on the rest of its
// client scope.
func (u *portfolioUsecase) Activate(ctx context.Context, id uint) error {
	return u.portfolios.Activate(ctx, id)
}

// SetStocks replaces a portfolio's membership with the given stock IDs in order.
func (u *portfolioUsecase) SetStocks(ctx context.Context, portfolioID uint, stockIDs []uint) error {
	return u.portfolios.SetStocks(ctx, portfolioID, stockIDs)
}

// DetachClient unscopes a deleted client's portfolios instead of cascading.
func (u *portfolioUsecase) DetachClient(ctx context.Context, clientID uint) error {
	return u.portfolios.DetachClient(ctx, clientID)
}

func visibleTo(session *accessentity.Session, p *entity.Portfolio) bool {
	ids, all := session.VisibleClientIDs()
	if all {
		return true
	}
	if p.ClientID == nil {
		return true
	}
	for _, id := range ids {
		if id == *p.ClientID {
			return true
		}
	}
	return false
}

func filterStocks(stocks []stockentity.Stock, term string) []stockentity.Stock {
	out := make([]stockentity.Stock, 0, len(stocks))
	for _, s := range stocks {
		if strings.Contains(strings.ToLower(s.Ticker), term) ||
			strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.EnglishName), term) {
			out = append(out, s)
		}
	}
	return out
}

func sortStocks(stocks []stockentity.Stock, order string) {
	switch order {
	case SortByReturn:
		sort.SliceStable(stocks, func(i, j int) bool {
			return stocks[i].ReturnRate > stocks[j].ReturnRate
		})
	case SortByName:
		sort.SliceStable(stocks, func(i, j int) bool {
			return stocks[i].Name < stocks[j].Name
		})
	}
}
