package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/access/transport/http/dto"
	"dashboard_backend/internal/feature/access/usecase"
)

// CredentialAdminUsecase is the admin credential CRUD surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CredentialAdminUsecase interface {
	ListClients(ctx context.Context) ([]entity.Client, error)
	CreateClient(ctx context.Context, client *entity.Client) error
	UpdateClient(ctx context.Context, client *entity.Client) error
	DeleteClient(ctx context.Context, id uint) error

	ListSharedPasswords(ctx context.Context) ([]entity.SharedPassword, error)
	CreateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error
	UpdateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error
	DeleteSharedPassword(ctx context.Context, id uint) error

	ListAccessCodes(ctx context.Context) ([]entity.AccessCode, error)
	CreateAccessCode(ctx context.Context, name, code string, expiresAt *time.Time) (*entity.AccessCode, error)
	SetAccessCodeActive(ctx context.Context, id uint, active bool) error
	DeleteAccessCode(ctx context.Context, id uint) error
}

// CredentialAdminHandler handles the admin credential endpoints.
type CredentialAdminHandler struct {
	uc CredentialAdminUsecase
}

// NewCredentialAdminHandler creates a new CredentialAdminHandler instance.
func NewCredentialAdminHandler(uc CredentialAdminUsecase) *CredentialAdminHandler {
	return &CredentialAdminHandler{uc: uc}
}

// ListClients returns every client. Passwords stay server-side.
func (h *CredentialAdminHandler) ListClients(c *gin.Context) {
	clients, err := h.uc.ListClients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.ClientItem, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientItem(client))
	}
	c.JSON(http.StatusOK, out)
}

// CreateClient registers a client with its login password.
func (h *CredentialAdminHandler) CreateClient(c *gin.Context) {
	var req dto.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := clientFromRequest(req)
	if err := h.uc.CreateClient(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toClientItem(*client))
}

// UpdateClient replaces a client's fields, including its password.
func (h *CredentialAdminHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := clientFromRequest(req)
	client.ID = uint(id)
	if err := h.uc.UpdateClient(c.Request.Context(), client); err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toClientItem(*client))
}

// DeleteClient removes a client and detaches its portfolios.
func (h *CredentialAdminHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.DeleteClient(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSharedPasswords returns every shared password row, secrets omitted.
func (h *CredentialAdminHandler) ListSharedPasswords(c *gin.Context) {
	passwords, err := h.uc.ListSharedPasswords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SharedPasswordItem, 0, len(passwords))
	for _, sp := range passwords {
		out = append(out, toSharedPasswordItem(sp))
	}
	c.JSON(http.StatusOK, out)
}

// CreateSharedPassword registers a shared password for a client set.
func (h *CredentialAdminHandler) CreateSharedPassword(c *gin.Context) {
	var req dto.SaveSharedPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp := sharedPasswordFromRequest(req)
	if err := h.uc.CreateSharedPassword(c.Request.Context(), sp); err != nil {
		if errors.Is(err, usecase.ErrSharedPasswordNoClients) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a non-master shared password needs at least one client"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toSharedPasswordItem(*sp))
}

// UpdateSharedPassword replaces a shared password's fields.
func (h *CredentialAdminHandler) UpdateSharedPassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SaveSharedPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp := sharedPasswordFromRequest(req)
	sp.ID = uint(id)
	if err := h.uc.UpdateSharedPassword(c.Request.Context(), sp); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSharedPasswordNoClients):
			c.JSON(http.StatusBadRequest, gin.H{"error": "a non-master shared password needs at least one client"})
		case errors.Is(err, usecase.ErrSharedPasswordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "shared password not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, toSharedPasswordItem(*sp))
}

// DeleteSharedPassword removes a shared password.
func (h *CredentialAdminHandler) DeleteSharedPassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.DeleteSharedPassword(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrSharedPasswordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shared password not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAccessCodes returns every admin access code, hashes omitted.
func (h *CredentialAdminHandler) ListAccessCodes(c *gin.Context) {
	codes, err := h.uc.ListAccessCodes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.AccessCodeItem, 0, len(codes))
	for _, code := range codes {
		out = append(out, toAccessCodeItem(code))
	}
	c.JSON(http.StatusOK, out)
}

// CreateAccessCode registers an admin access code. The plaintext is accepted
// once and only the hash is stored.
func (h *CredentialAdminHandler) CreateAccessCode(c *gin.Context) {
	var req dto.CreateAccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code, err := h.uc.CreateAccessCode(c.Request.Context(), req.Name, req.Code, req.ExpiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toAccessCodeItem(*code))
}

// SetAccessCodeActive toggles an access code without deleting its history.
func (h *CredentialAdminHandler) SetAccessCodeActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.uc.SetAccessCodeActive(c.Request.Context(), uint(id), *req.IsActive); err != nil {
		if errors.Is(err, usecase.ErrAccessCodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "access code not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAccessCode removes an access code.
func (h *CredentialAdminHandler) DeleteAccessCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.DeleteAccessCode(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrAccessCodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "access code not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func clientFromRequest(req dto.SaveClientRequest) *entity.Client {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &entity.Client{
		Name:       req.Name,
		Password:   req.Password,
		IsActive:   active,
		BrandColor: req.BrandColor,
		LogoURL:    req.LogoURL,
	}
}

func sharedPasswordFromRequest(req dto.SaveSharedPasswordRequest) *entity.SharedPassword {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &entity.SharedPassword{
		Label:     req.Label,
		Password:  req.Password,
		IsActive:  active,
		IsMaster:  req.IsMaster,
		ClientIDs: req.ClientIDs,
	}
}

func toClientItem(client entity.Client) dto.ClientItem {
	return dto.ClientItem{
		ID:         client.ID,
		Name:       client.Name,
		IsActive:   client.IsActive,
		BrandColor: client.BrandColor,
		LogoURL:    client.LogoURL,
	}
}

func toSharedPasswordItem(sp entity.SharedPassword) dto.SharedPasswordItem {
	clientIDs := sp.ClientIDs
	if clientIDs == nil {
		clientIDs = []uint{}
	}
	return dto.SharedPasswordItem{
		ID:        sp.ID,
		Label:     sp.Label,
		IsActive:  sp.IsActive,
		IsMaster:  sp.IsMaster,
		ClientIDs: clientIDs,
	}
}

func toAccessCodeItem(code entity.AccessCode) dto.AccessCodeItem {
	return dto.AccessCodeItem{
		ID:        code.ID,
		Name:      code.Name,
		IsAdmin:   code.IsAdmin,
		IsActive:  code.IsActive,
		ExpiresAt: code.ExpiresAt,
	}
}
