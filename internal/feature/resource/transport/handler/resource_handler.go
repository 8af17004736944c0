// Package handler provides the HTTP endpoints for the resource feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	accessentity "dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/resource/domain/entity"
	"dashboard_backend/internal/feature/resource/transport/http/dto"
	"dashboard_backend/internal/feature/resource/usecase"
	"dashboard_backend/internal/platform/token"
)

// ResourceUsecase is the resource and glossary surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ResourceUsecase interface {
	List(ctx context.Context, session *accessentity.Session) ([]entity.Resource, error)
	LatestUploadedAt(ctx context.Context, session *accessentity.Session) (time.Time, error)
	Create(ctx context.Context, r *entity.Resource, upload *usecase.FileUpload) error
	Update(ctx context.Context, r *entity.Resource) error
	Delete(ctx context.Context, id uint) error
	Glossary(ctx context.Context) ([]entity.GlossaryTerm, error)
	CreateTerm(ctx context.Context, term *entity.GlossaryTerm) error
	UpdateTerm(ctx context.Context, term *entity.GlossaryTerm) error
	DeleteTerm(ctx context.Context, id uint) error
}

// ResourceHandler handles HTTP requests for the resource feature.
type ResourceHandler struct {
	uc ResourceUsecase
}

// NewResourceHandler creates a new ResourceHandler instance.
func NewResourceHandler(uc ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// List returns the session's visible resources plus the newest upload time.
func (h *ResourceHandler) List(c *gin.Context) {
	session := token.FromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	resources, err := h.uc.List(c.Request.Context(), session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	latest, err := h.uc.LatestUploadedAt(c.Request.Context(), session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.ResourceItem, 0, len(resources))
	for _, r := range resources {
		items = append(items, toResourceItem(r))
	}
	out := dto.ResourceList{Resources: items}
	if !latest.IsZero() {
		out.LatestUploadedAt = &latest
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a resource from a multipart form: metadata fields plus an
// optional "file" part uploaded to the object store.
func (h *ResourceHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	res := &entity.Resource{
		Title:    title,
		Category: c.PostForm("category"),
		FileURL:  c.PostForm("fileUrl"),
	}
	if raw := c.PostForm("clientId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clientId"})
			return
		}
		clientID := uint(id)
		res.ClientID = &clientID
	}

	var upload *usecase.FileUpload
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()
		upload = &usecase.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		}
	} else if res.FileURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either file or fileUrl is required"})
		return
	}

	if err := h.uc.Create(c.Request.Context(), res, upload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toResourceItem(*res))
}

// Update replaces a resource's metadata. The stored file itself is immutable;
// replacing it means a new upload.
func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := &entity.Resource{
		ID:       uint(id),
		Title:    req.Title,
		Category: req.Category,
		FileURL:  req.FileURL,
		ClientID: req.ClientID,
	}
	if err := h.uc.Update(c.Request.Context(), res); err != nil {
		if errors.Is(err, usecase.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResourceItem(*res))
}

// Delete removes a resource row. The stored object is kept.
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Glossary returns every glossary term.
func (h *ResourceHandler) Glossary(c *gin.Context) {
	terms, err := h.uc.Glossary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.GlossaryTermItem, 0, len(terms))
	for _, term := range terms {
		out = append(out, toTermItem(term))
	}
	c.JSON(http.StatusOK, out)
}

// CreateTerm registers a glossary term.
func (h *ResourceHandler) CreateTerm(c *gin.Context) {
	var req dto.SaveTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	term := &entity.GlossaryTerm{Term: req.Term, Definition: req.Definition, Category: req.Category}
	if err := h.uc.CreateTerm(c.Request.Context(), term); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toTermItem(*term))
}

// UpdateTerm replaces a glossary term's fields.
func (h *ResourceHandler) UpdateTerm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SaveTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	term := &entity.GlossaryTerm{ID: uint(id), Term: req.Term, Definition: req.Definition, Category: req.Category}
	if err := h.uc.UpdateTerm(c.Request.Context(), term); err != nil {
		if errors.Is(err, usecase.ErrTermNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "glossary term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTermItem(*term))
}

// DeleteTerm removes a glossary term.
func (h *ResourceHandler) DeleteTerm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.DeleteTerm(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrTermNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "glossary term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toResourceItem(r entity.Resource) dto.ResourceItem {
	return dto.ResourceItem{
		ID:         r.ID,
		Title:      r.Title,
		Category:   r.Category,
		FileURL:    r.FileURL,
		ClientID:   r.ClientID,
		UploadedAt: r.UploadedAt,
	}
}

func toTermItem(t entity.GlossaryTerm) dto.GlossaryTermItem {
	return dto.GlossaryTermItem{ID: t.ID, Term: t.Term, Definition: t.Definition, Category: t.Category}
}
