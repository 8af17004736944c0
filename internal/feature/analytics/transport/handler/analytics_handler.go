// Package handler provides the HTTP endpoints for the analytics feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/feature/analytics/domain/entity"
)

// defaultWindowDays is the lookback used when the caller gives no range.
const defaultWindowDays = 30

// AnalyticsUsecase is the aggregation surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AnalyticsUsecase interface {
	PortfolioAnalytics(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error)
}

// AnalyticsHandler handles HTTP requests for the analytics feature.
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance.
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// PortfolioViews returns view counts per portfolio over a lookback window.
// Query param: days (positive integer, default 30).
func (h *AnalyticsHandler) PortfolioViews(c *gin.Context) {
	days := defaultWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}
	since := time.Now().AddDate(0, 0, -days)

	counts, err := h.uc.PortfolioAnalytics(c.Request.Context(), since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"since": since, "portfolios": counts})
}
