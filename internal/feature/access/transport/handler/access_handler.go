// Package handler provides the HTTP endpoints for the access feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/access/transport/http/dto"
	"dashboard_backend/internal/feature/access/usecase"
	"dashboard_backend/internal/platform/token"
)

// AccessUsecase is the authentication and session lifetime surface.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AccessUsecase interface {
	Authenticate(ctx context.Context, password string) (*entity.Session, string, error)
	AuthenticateAdmin(ctx context.Context, code string) (*entity.Session, string, error)
	Extend(ctx context.Context, session *entity.Session) (*entity.Session, string, error)
}

// AccessHandler handles HTTP requests for the access feature.
type AccessHandler struct {
	uc AccessUsecase
}

// NewAccessHandler creates a new AccessHandler instance.
func NewAccessHandler(uc AccessUsecase) *AccessHandler {
	return &AccessHandler{uc: uc}
}

// Login opens a client session from a single password. The password decides
// the access type itself: client passwords are tried before shared ones.
func (h *AccessHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, signed, err := h.uc.Authenticate(c.Request.Context(), req.Password)
	if err != nil {
		h.loginError(c, err)
		return
	}
	slog.Info("client session opened", "accessType", session.AccessType)
	c.JSON(http.StatusOK, toSessionResponse(session, signed))
}

// AdminLogin opens an admin session from an access code.
func (h *AccessHandler) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, signed, err := h.uc.AuthenticateAdmin(c.Request.Context(), req.Password)
	if err != nil {
		h.loginError(c, err)
		return
	}
	slog.Info("admin session opened")
	c.JSON(http.StatusOK, toSessionResponse(session, signed))
}

// Extend renews the current session's lifetime after re-checking the realm's
// credential version.
func (h *AccessHandler) Extend(c *gin.Context) {
	session := token.FromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	renewed, signed, err := h.uc.Extend(c.Request.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCodeRevoked):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access code revoked"})
		case errors.Is(err, usecase.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(renewed, signed))
}

// Session reports the current session without renewing it, so clients can
// drive their countdown display.
func (h *AccessHandler) Session(c *gin.Context) {
	session := token.FromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session, ""))
}

// Logout acknowledges the client discarding its token. Sessions are
// stateless, so there is nothing to revoke server-side.
func (h *AccessHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *AccessHandler) loginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toSessionResponse(session *entity.Session, signed string) dto.SessionResponse {
	out := dto.SessionResponse{
		Token:      signed,
		AccessType: string(session.AccessType),
		ClientIDs:  session.ClientIDs,
		ExpiresAt:  session.ExpiresAt,
		Remaining:  session.Remaining(),
	}
	if session.Client != nil {
		out.Client = &dto.ClientInfo{
			ID:         session.Client.ID,
			Name:       session.Client.Name,
			LogoURL:    session.Client.LogoURL,
			BrandColor: session.Client.BrandColor,
		}
	}
	return out
}
