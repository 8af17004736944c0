// Package entity defines the domain entities for the issue feature.
package entity

import "time"

// Issue is a dated news/commentary entry attached to one stock.
type Issue struct {
	ID uint `gorm:"primaryKey"`

	StockID uint `gorm:"index;not null"`

	// Date is the display date in YY/MM/DD form. Stored as authored rather
	// than as a timestamp: imports pass display strings through verbatim.
	Date string `gorm:"size:16;not null"`

	Title   string `gorm:"size:512;not null"`
	Content string `gorm:"type:text;not null"`

	// Source names the originating outlet for external news; empty for
	// firm-authored commentary.
	Source string `gorm:"size:255"`

	// IsCMS marks firm-authored commentary as opposed to external news.
	IsCMS bool `gorm:"not null;default:false"`

	Keywords []string `gorm:"serializer:json"`

	// Images holds uploaded image URLs with captions. Populated only after
	// the issue row exists; uploads are best-effort.
	Images []IssueImage `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IssueImage is one uploaded image attached to an issue.
type IssueImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}
