// Package dto defines the HTTP request and response shapes for the issue feature.
package dto

// IssueItem is one news entry on a stock's timeline.
type IssueItem struct {
	ID       uint        `json:"id"`
	StockID  uint        `json:"stockId"`
	Date     string      `json:"date"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Source   string      `json:"source,omitempty"`
	IsCMS    bool        `json:"isCms"`
	Keywords []string    `json:"keywords"`
	Images   []IssueImage `json:"images"`
}

// IssueImage is one attached image with its caption.
type IssueImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// UpdateIssueRequest carries the admin update payload for an issue.
type UpdateIssueRequest struct {
	Date     string   `json:"date" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Source   string   `json:"source"`
	IsCMS    bool     `json:"isCms"`
	Keywords []string `json:"keywords"`
}

// ImportReport mirrors the parser's four mutually distinct outcome buckets.
type ImportReport struct {
	Inserted       int        `json:"inserted"`
	Skipped        int        `json:"skipped"`
	Duplicates     int        `json:"duplicates"`
	SkippedTickers []string   `json:"skippedTickers"`
	Errors         []RowError `json:"errors"`
}

// RowError is one rejected row with its reason.
type RowError struct {
	RowNum int    `json:"rowNum"`
	Reason string `json:"reason"`
}
