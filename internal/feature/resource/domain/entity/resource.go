// Package entity defines the domain models for the resource feature.
package entity

import "time"

// Resource is one downloadable document shown on the resources page.
type Resource struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:255;not null"`
	Category string `gorm:"size:64;index"`
	FileURL  string `gorm:"size:1024;not null"`

	// ClientID scopes the resource to one client. Nil means every client
	// can see it.
	ClientID *uint `gorm:"index"`

	UploadedAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GlossaryTerm is one entry in the investment glossary.
type GlossaryTerm struct {
	ID         uint   `gorm:"primaryKey"`
	Term       string `gorm:"size:255;not null;uniqueIndex"`
	Definition string `gorm:"type:text;not null"`
	Category   string `gorm:"size:64;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
