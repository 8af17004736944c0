// Package handler provides the HTTP endpoints for the issue feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/feature/issue/adapters/xlsx"
	"dashboard_backend/internal/feature/issue/domain/entity"
	"dashboard_backend/internal/feature/issue/transport/http/dto"
	"dashboard_backend/internal/feature/issue/usecase"
	stockentity "dashboard_backend/internal/feature/stock/domain/entity"
	stockusecase "dashboard_backend/internal/feature/stock/usecase"
)

// IssueUsecase is the issue CRUD surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type IssueUsecase interface {
	ListByStock(ctx context.Context, stockID uint) ([]entity.Issue, error)
	CreateWithImages(ctx context.Context, issue *entity.Issue, uploads []usecase.ImageUpload) (*entity.Issue, error)
	Update(ctx context.Context, issue *entity.Issue) error
	Delete(ctx context.Context, id uint) error
}

// ImportUsecase turns parsed spreadsheet rows into stored issues.
type ImportUsecase interface {
	BulkImport(ctx context.Context, rows []entity.ImportRow) (*entity.ImportReport, error)
}

// StockResolver maps the ticker in the URL to the stock whose issues are
// listed.
type StockResolver interface {
	FindByTicker(ctx context.Context, ticker string) (*stockentity.Stock, error)
}

// IssueHandler handles HTTP requests for the issue feature.
type IssueHandler struct {
	uc       IssueUsecase
	importer ImportUsecase
	stocks   StockResolver
}

// NewIssueHandler creates a new IssueHandler instance.
func NewIssueHandler(uc IssueUsecase, importer ImportUsecase, stocks StockResolver) *IssueHandler {
	return &IssueHandler{uc: uc, importer: importer, stocks: stocks}
}

// ListByStock returns a stock's issues, newest first.
func (h *IssueHandler) ListByStock(c *gin.Context) {
	stock, err := h.stocks.FindByTicker(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	issues, err := h.uc.ListByStock(c.Request.Context(), stock.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.IssueItem, 0, len(issues))
	for _, issue := range issues {
		out = append(out, toIssueItem(issue))
	}
	c.JSON(http.StatusOK, out)
}

// Create registers an issue from a multipart form. Image parts upload one by
// one after the row exists; a failed upload drops that image only.
// Form fields: stockId, date, title, content, source, isCms, keywords
// (comma-separated), plus repeated "images" file parts and parallel
// "captions" values.
func (h *IssueHandler) Create(c *gin.Context) {
	stockID, err := strconv.ParseUint(c.PostForm("stockId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stockId"})
		return
	}
	issue := &entity.Issue{
		StockID: uint(stockID),
		Date:    c.PostForm("date"),
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Source:  c.PostForm("source"),
		IsCMS:   c.PostForm("isCms") == "true",
	}
	if issue.Date == "" || issue.Title == "" || issue.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, title and content are required"})
		return
	}
	issue.Keywords = splitKeywords(c.PostForm("keywords"))

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	captions := form.Value["captions"]
	files := form.File["images"]

	uploads := make([]usecase.ImageUpload, 0, len(files))
	opened := make([]interface{ Close() error }, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opened = append(opened, f)
		caption := ""
		if i < len(captions) {
			caption = captions[i]
		}
		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Caption:     caption,
			Reader:      f,
		})
	}

	created, err := h.uc.CreateWithImages(c.Request.Context(), issue, uploads)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toIssueItem(*created))
}

// Update replaces an issue's text fields. Images are set at creation time.
func (h *IssueHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	issue := &entity.Issue{
		ID:       uint(id),
		Date:     req.Date,
		Title:    req.Title,
		Content:  req.Content,
		Source:   req.Source,
		IsCMS:    req.IsCMS,
		Keywords: req.Keywords,
	}
	if issue.Keywords == nil {
		issue.Keywords = []string{}
	}
	if err := h.uc.Update(c.Request.Context(), issue); err != nil {
		if errors.Is(err, usecase.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "issue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toIssueItem(*issue))
}

// Delete removes an issue.
func (h *IssueHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "issue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Import accepts an xlsx workbook ("file" part), parses it into loosely-typed
// rows and bulk-imports them, returning the four-bucket report.
func (h *IssueHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	rows, err := xlsx.ReadRows(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := h.importer.BulkImport(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toImportReport(report))
}

func splitKeywords(raw string) []string {
	keywords := []string{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

func toIssueItem(issue entity.Issue) dto.IssueItem {
	keywords := issue.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	images := make([]dto.IssueImage, 0, len(issue.Images))
	for _, img := range issue.Images {
		images = append(images, dto.IssueImage{URL: img.URL, Caption: img.Caption})
	}
	return dto.IssueItem{
		ID:       issue.ID,
		StockID:  issue.StockID,
		Date:     issue.Date,
		Title:    issue.Title,
		Content:  issue.Content,
		Source:   issue.Source,
		IsCMS:    issue.IsCMS,
		Keywords: keywords,
		Images:   images,
	}
}

func toImportReport(report *entity.ImportReport) dto.ImportReport {
	rowErrors := make([]dto.RowError, 0, len(report.Errors))
	for _, e := range report.Errors {
		rowErrors = append(rowErrors, dto.RowError{RowNum: e.RowNum, Reason: e.Reason})
	}
	skipped := report.SkippedTickers
	if skipped == nil {
		skipped = []string{}
	}
	return dto.ImportReport{
		Inserted:       report.Inserted,
		Skipped:        report.Skipped,
		Duplicates:     report.Duplicates,
		SkippedTickers: skipped,
		Errors:         rowErrors,
	}
}
