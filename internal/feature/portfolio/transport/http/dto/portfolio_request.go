package dto

// SavePortfolioRequest carries the admin create/update payload for a portfolio.
type SavePortfolioRequest struct {
	Name        string  `json:"name" binding:"required"`
	ClientID    *uint   `json:"clientId"`
	Description string  `json:"description"`
	ReturnRate  float64 `json:"returnRate"`
	SortKey     int     `json:"sortKey"`
}

// SetStocksRequest replaces a portfolio's membership with the given stock IDs
// in display order.
type SetStocksRequest struct {
	StockIDs []uint `json:"stockIds" binding:"required"`
}
