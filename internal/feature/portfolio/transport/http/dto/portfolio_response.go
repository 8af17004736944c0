// Package dto defines the HTTP request and response shapes for the portfolio feature.
package dto

import stockdto "dashboard_backend/internal/feature/stock/transport/http/dto"

// PortfolioView is one composed portfolio on the dashboard.
type PortfolioView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ClientID    *uint  `json:"clientId,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`

	// AggregateReturn sums the constituent stocks' return rates and is the
	// display value; ManualReturnRate is the admin-entered figure.
	AggregateReturn  float64 `json:"aggregateReturn"`
	ManualReturnRate float64 `json:"manualReturnRate"`

	Stocks []stockdto.StockItem `json:"stocks"`
}

// PortfolioItem is one portfolio row on the admin list, membership as IDs.
type PortfolioItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ClientID    *uint   `json:"clientId,omitempty"`
	Description string  `json:"description,omitempty"`
	ReturnRate  float64 `json:"returnRate"`
	IsActive    bool    `json:"isActive"`
	SortKey     int     `json:"sortKey"`
	StockIDs    []uint  `json:"stockIds"`
}
