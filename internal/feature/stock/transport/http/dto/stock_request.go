package dto

// SaveStockRequest carries the admin create/update payload for a stock.
type SaveStockRequest struct {
	Ticker           string                `json:"ticker" binding:"required"`
	SecondaryTicker  string                `json:"secondaryTicker"`
	Name             string                `json:"name" binding:"required"`
	EnglishName      string                `json:"englishName"`
	Sector           string                `json:"sector"`
	MarketCap        string                `json:"marketCap"`
	Price            float64               `json:"price"`
	ReturnRate       float64               `json:"returnRate"`
	InvestmentPoints []InvestmentPointItem `json:"investmentPoints"`
	BusinessSegments []BusinessSegmentItem `json:"businessSegments"`
	IsActive         *bool                 `json:"isActive"`
	SortKey          int                   `json:"sortKey"`
}
