// Package entity defines the domain models for the analytics feature.
package entity

import "time"

// ViewEvent is one recorded portfolio view.
type ViewEvent struct {
	ID          uint `gorm:"primaryKey"`
	PortfolioID uint `gorm:"index;not null"`

	// ClientID is the viewing client for single sessions, nil for shared,
	// master and admin sessions.
	ClientID *uint `gorm:"index"`

	// AccessType records how the viewing session was opened.
	AccessType string `gorm:"size:16;not null"`

	ViewedAt time.Time `gorm:"index;not null"`
}

// PortfolioViewCount is one aggregation row: views per portfolio.
type PortfolioViewCount struct {
	PortfolioID uint  `json:"portfolioId"`
	Views       int64 `json:"views"`
}
