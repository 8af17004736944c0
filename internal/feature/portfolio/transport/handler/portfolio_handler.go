// Package handler provides the HTTP endpoints for the portfolio feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	accessentity "dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/portfolio/domain/entity"
	"dashboard_backend/internal/feature/portfolio/transport/http/dto"
	"dashboard_backend/internal/feature/portfolio/usecase"
	stockdto "dashboard_backend/internal/feature/stock/transport/http/dto"
	"dashboard_backend/internal/platform/token"
)

// PortfolioUsecase is the dashboard composition and admin mutation surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PortfolioUsecase interface {
	Dashboard(ctx context.Context, session *accessentity.Session, q usecase.Query) ([]usecase.View, error)
	Detail(ctx context.Context, session *accessentity.Session, id uint) (*usecase.View, error)
	List(ctx context.Context) ([]entity.Portfolio, error)
	Create(ctx context.Context, p *entity.Portfolio) error
	Update(ctx context.Context, p *entity.Portfolio) error
	Delete(ctx context.Context, id uint) error
	Activate(ctx context.Context, id uint) error
	SetStocks(ctx context.Context, portfolioID uint, stockIDs []uint) error
}

// ViewRecorder notes a portfolio view for the analytics rollup. Recording is
// best effort and never fails the read path.
type ViewRecorder interface {
	RecordPortfolioView(ctx context.Context, session *accessentity.Session, portfolioID uint)
}

// PortfolioHandler handles HTTP requests for the portfolio feature.
type PortfolioHandler struct {
	uc    PortfolioUsecase
	views ViewRecorder
}

// NewPortfolioHandler creates a new PortfolioHandler instance. views may be nil.
func NewPortfolioHandler(uc PortfolioUsecase, views ViewRecorder) *PortfolioHandler {
	return &PortfolioHandler{uc: uc, views: views}
}

// Dashboard returns the session's visible portfolios with composed stocks.
// Query params: search (ticker/name substring), sort ("return" or "name").
func (h *PortfolioHandler) Dashboard(c *gin.Context) {
	session := token.FromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	q := usecase.Query{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
	views, err := h.uc.Dashboard(c.Request.Context(), session, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.PortfolioView, 0, len(views))
	for _, v := range views {
		out = append(out, toPortfolioView(v))
	}
	c.JSON(http.StatusOK, out)
}

// Detail returns one composed portfolio and records the view.
func (h *PortfolioHandler) Detail(c *gin.Context) {
	session := token.FromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	view, err := h.uc.Detail(c.Request.Context(), session, uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if h.views != nil {
		h.views.RecordPortfolioView(c.Request.Context(), session, uint(id))
	}
	c.JSON(http.StatusOK, toPortfolioView(*view))
}

// List returns every portfolio for the admin screens.
func (h *PortfolioHandler) List(c *gin.Context) {
	portfolios, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.PortfolioItem, 0, len(portfolios))
	for _, p := range portfolios {
		out = append(out, toPortfolioItem(p))
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a new portfolio.
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.SavePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &entity.Portfolio{
		Name:        req.Name,
		ClientID:    req.ClientID,
		Description: req.Description,
		ReturnRate:  req.ReturnRate,
		SortKey:     req.SortKey,
	}
	if err := h.uc.Create(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toPortfolioItem(*p))
}

// Update replaces a portfolio's fields. Activation has its own endpoint.
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SavePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &entity.Portfolio{
		ID:          uint(id),
		Name:        req.Name,
		ClientID:    req.ClientID,
		Description: req.Description,
		ReturnRate:  req.ReturnRate,
		SortKey:     req.SortKey,
	}
	if err := h.uc.Update(c.Request.Context(), p); err != nil {
		if errors.Is(err, usecase.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPortfolioItem(*p))
}

// Delete removes a portfolio and its membership rows.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Activate highlights one portfolio and deactivates its scope siblings.
func (h *PortfolioHandler) Activate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.Activate(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStocks replaces a portfolio's stock membership in display order.
func (h *PortfolioHandler) SetStocks(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SetStocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.uc.SetStocks(c.Request.Context(), uint(id), req.StockIDs); err != nil {
		if errors.Is(err, usecase.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toPortfolioView(v usecase.View) dto.PortfolioView {
	stocks := make([]stockdto.StockItem, 0, len(v.Stocks))
	for _, s := range v.Stocks {
		stocks = append(stocks, stockdto.NewStockItem(s))
	}
	return dto.PortfolioView{
		ID:               v.Portfolio.ID,
		Name:             v.Portfolio.Name,
		ClientID:         v.Portfolio.ClientID,
		Description:      v.Portfolio.Description,
		IsActive:         v.Portfolio.IsActive,
		AggregateReturn:  v.AggregateReturn,
		ManualReturnRate: v.Portfolio.ReturnRate,
		Stocks:           stocks,
	}
}

func toPortfolioItem(p entity.Portfolio) dto.PortfolioItem {
	stockIDs := make([]uint, 0, len(p.Stocks))
	for _, m := range p.Stocks {
		stockIDs = append(stockIDs, m.StockID)
	}
	return dto.PortfolioItem{
		ID:          p.ID,
		Name:        p.Name,
		ClientID:    p.ClientID,
		Description: p.Description,
		ReturnRate:  p.ReturnRate,
		IsActive:    p.IsActive,
		SortKey:     p.SortKey,
		StockIDs:    stockIDs,
	}
}
