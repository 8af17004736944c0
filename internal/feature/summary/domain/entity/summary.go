// Package entity defines the domain models for the summary feature.
package entity

// IssueDigest is one timeline entry handed to the generator.
type IssueDigest struct {
	Date    string
	Title   string
	Content string
}

// StockSummary is the generated overview of a stock's recent issue flow.
type StockSummary struct {
	StockName string   `json:"stockName"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
}
