// Package dto defines the HTTP response shapes for the stock feature.
package dto

// StockItem is one stock in the viewer list, with display fields derived
// from the stored raw strings.
type StockItem struct {
	ID              uint    `json:"id"`
	Ticker          string  `json:"ticker"`
	SecondaryTicker string  `json:"secondaryTicker,omitempty"`
	Name            string  `json:"name"`
	EnglishName     string  `json:"englishName,omitempty"`
	Sector          string  `json:"sector"`
	SectorShort     string  `json:"sectorShort"`
	MarketCap       string  `json:"marketCap"`
	MarketCapShort  string  `json:"marketCapShort"`
	Price           float64 `json:"price"`
	ReturnRate      float64 `json:"returnRate"`
}

// StockDetail adds the authored long-form content to StockItem.
type StockDetail struct {
	StockItem
	InvestmentPoints []InvestmentPointItem `json:"investmentPoints"`
	BusinessSegments []BusinessSegmentItem `json:"businessSegments"`
}

type InvestmentPointItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BusinessSegmentItem struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}
