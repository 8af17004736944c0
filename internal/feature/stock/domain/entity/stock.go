// Package entity defines the domain models for the stock feature.
package entity

import "time"

// Stock is one listed security with the figures the dashboard displays.
type Stock struct {
	ID uint `gorm:"primaryKey"`

	// Ticker is the primary listing code (e.g. "005930").
	Ticker string `gorm:"size:20;not null;uniqueIndex"`

	// SecondaryTicker holds a dual-listing or preferred-share code, if any.
	SecondaryTicker string `gorm:"size:20"`

	Name        string `gorm:"size:255;not null"`
	EnglishName string `gorm:"size:255"`

	// Sector is the raw sector text as authored; display surfaces run it
	// through SimplifySector.
	Sector string `gorm:"size:255"`

	// MarketCap keeps the authored "<N>조 <M,MMM>억원" string. Parsed forms
	// are derived, never stored.
	MarketCap string `gorm:"size:64"`

	Price float64

	// ReturnRate is the stock's own return figure in percent. Portfolio
	// aggregate display return sums these.
	ReturnRate float64

	InvestmentPoints []InvestmentPoint `gorm:"serializer:json"`
	BusinessSegments []BusinessSegment `gorm:"serializer:json"`

	IsActive bool `gorm:"not null;default:true"`
	SortKey  int  `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvestmentPoint is one thesis bullet shown on the stock detail view.
type InvestmentPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BusinessSegment is one revenue segment with its share in percent.
type BusinessSegment struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}
