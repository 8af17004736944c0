// Package entity defines the domain models for the portfolio feature.
package entity

import "time"

// Portfolio is a named, optionally client-scoped collection of stocks.
type Portfolio struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`

	// ClientID scopes the portfolio to one client. Nil means the portfolio
	// is unscoped and visible to every client.
	ClientID *uint `gorm:"index"`

	Description string `gorm:"size:1024"`

	// ReturnRate is the admin-entered figure. The client view's display
	// return is the sum of constituent stock return rates instead; this
	// field is still surfaced separately.
	ReturnRate float64

	// IsActive marks the one highlighted portfolio per client scope.
	// Activation deactivates the rest of the scope in the same transaction.
	IsActive bool `gorm:"not null;default:false"`

	SortKey int `gorm:"not null;default:0"`

	Stocks []PortfolioStock `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PortfolioStock is one membership row tying a stock into a portfolio.
type PortfolioStock struct {
	ID          uint `gorm:"primaryKey"`
	PortfolioID uint `gorm:"index:idx_portfolio_stock,unique;not null"`
	StockID     uint `gorm:"index:idx_portfolio_stock,unique;not null"`

	// Position orders the stock within the portfolio.
	Position int `gorm:"not null;default:0"`
}
