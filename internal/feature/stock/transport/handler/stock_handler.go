// Package handler provides the HTTP endpoints for the stock feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/feature/stock/domain/entity"
	"dashboard_backend/internal/feature/stock/transport/http/dto"
	"dashboard_backend/internal/feature/stock/usecase"
)

// StockUsecase is the stock read and admin mutation surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StockUsecase interface {
	ListActive(ctx context.Context) ([]entity.Stock, error)
	List(ctx context.Context) ([]entity.Stock, error)
	FindByTicker(ctx context.Context, ticker string) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) error
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, id uint) error
}

// StockHandler handles HTTP requests for the stock feature.
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler creates a new StockHandler instance.
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List returns the active stocks for the viewer, with derived display fields.
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.uc.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.NewStockItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// ListAll returns every stock, active or not, for the admin screens.
func (h *StockHandler) ListAll(c *gin.Context) {
	stocks, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.NewStockItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// Detail returns one stock looked up by ticker.
func (h *StockHandler) Detail(c *gin.Context) {
	stock, err := h.uc.FindByTicker(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStockDetail(*stock))
}

// Create registers a new stock.
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.SaveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stock := fromSaveRequest(req)
	if err := h.uc.Create(c.Request.Context(), stock); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toStockDetail(*stock))
}

// Update replaces an existing stock's fields.
func (h *StockHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SaveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stock := fromSaveRequest(req)
	stock.ID = uint(id)
	if err := h.uc.Update(c.Request.Context(), stock); err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStockDetail(*stock))
}

// Delete removes a stock.
func (h *StockHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toStockDetail(s entity.Stock) dto.StockDetail {
	points := make([]dto.InvestmentPointItem, 0, len(s.InvestmentPoints))
	for _, p := range s.InvestmentPoints {
		points = append(points, dto.InvestmentPointItem{Title: p.Title, Description: p.Description})
	}
	segments := make([]dto.BusinessSegmentItem, 0, len(s.BusinessSegments))
	for _, seg := range s.BusinessSegments {
		segments = append(segments, dto.BusinessSegmentItem{Name: seg.Name, Share: seg.Share})
	}
	return dto.StockDetail{
		StockItem:        dto.NewStockItem(s),
		InvestmentPoints: points,
		BusinessSegments: segments,
	}
}

func fromSaveRequest(req dto.SaveStockRequest) *entity.Stock {
	points := make([]entity.InvestmentPoint, 0, len(req.InvestmentPoints))
	for _, p := range req.InvestmentPoints {
		points = append(points, entity.InvestmentPoint{Title: p.Title, Description: p.Description})
	}
	segments := make([]entity.BusinessSegment, 0, len(req.BusinessSegments))
	for _, seg := range req.BusinessSegments {
		segments = append(segments, entity.BusinessSegment{Name: seg.Name, Share: seg.Share})
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &entity.Stock{
		Ticker:           req.Ticker,
		SecondaryTicker:  req.SecondaryTicker,
		Name:             req.Name,
		EnglishName:      req.EnglishName,
		Sector:           req.Sector,
		MarketCap:        req.MarketCap,
		Price:            req.Price,
		ReturnRate:       req.ReturnRate,
		InvestmentPoints: points,
		BusinessSegments: segments,
		IsActive:         active,
		SortKey:          req.SortKey,
	}
}
