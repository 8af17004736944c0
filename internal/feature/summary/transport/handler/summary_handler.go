// Package handler provides the HTTP endpoints for the summary feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	stockentity "dashboard_backend/internal/feature/stock/domain/entity"
	stockusecase "dashboard_backend/internal/feature/stock/usecase"
	"dashboard_backend/internal/feature/summary/domain/entity"
)

// SummaryUsecase generates a stock's issue-timeline summary.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SummaryUsecase interface {
	Summarize(ctx context.Context, stockID uint, stockName string) (*entity.StockSummary, error)
}

// StockFinder resolves the stock whose timeline is summarized.
type StockFinder interface {
	FindByID(ctx context.Context, id uint) (*stockentity.Stock, error)
}

// SummaryHandler handles HTTP requests for the summary feature.
type SummaryHandler struct {
	uc     SummaryUsecase
	stocks StockFinder
}

// NewSummaryHandler creates a new SummaryHandler instance.
func NewSummaryHandler(uc SummaryUsecase, stocks StockFinder) *SummaryHandler {
	return &SummaryHandler{uc: uc, stocks: stocks}
}

// Summarize generates a summary for one stock's issue timeline.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	stock, err := h.stocks.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.uc.Summarize(c.Request.Context(), stock.ID, stock.Name)
	if err != nil {
		// Generator errors surface to the admin caller untouched.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
