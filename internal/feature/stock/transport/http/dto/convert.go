package dto

import (
	"dashboard_backend/internal/feature/stock/domain"
	"dashboard_backend/internal/feature/stock/domain/entity"
)

// NewStockItem maps a stock entity to its list representation, deriving the
// simplified sector labels and the short market-cap form.
func NewStockItem(s entity.Stock) StockItem {
	return StockItem{
		ID:              s.ID,
		Ticker:          s.Ticker,
		SecondaryTicker: s.SecondaryTicker,
		Name:            s.Name,
		EnglishName:     s.EnglishName,
		Sector:          domain.SimplifySector(s.Sector),
		SectorShort:     domain.SimplifySectorShort(s.Sector),
		MarketCap:       s.MarketCap,
		MarketCapShort:  domain.FormatMarketCapShort(s.MarketCap),
		Price:           s.Price,
		ReturnRate:      s.ReturnRate,
	}
}
