package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/access/transport/http/dto"
	"dashboard_backend/internal/feature/access/usecase"
	"dashboard_backend/internal/platform/token"
)

type mockAccessUsecase struct {
	AuthenticateFunc      func(ctx context.Context, password string) (*entity.Session, string, error)
	AuthenticateAdminFunc func(ctx context.Context, code string) (*entity.Session, string, error)
	ExtendFunc            func(ctx context.Context, session *entity.Session) (*entity.Session, string, error)
}

func (m *mockAccessUsecase) Authenticate(ctx context.Context, password string) (*entity.Session, string, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, password)
	}
	return nil, "", usecase.ErrInvalidCredentials
}

func (m *mockAccessUsecase) AuthenticateAdmin(ctx context.Context, code string) (*entity.Session, string, error) {
	if m.AuthenticateAdminFunc != nil {
		return m.AuthenticateAdminFunc(ctx, code)
	}
	return nil, "", usecase.ErrInvalidCredentials
}

func (m *mockAccessUsecase) Extend(ctx context.Context, session *entity.Session) (*entity.Session, string, error) {
	if m.ExtendFunc != nil {
		return m.ExtendFunc(ctx, session)
	}
	return nil, "", usecase.ErrSessionExpired
}

func setupRouter(h *AccessHandler, session *entity.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/admin/login", h.AdminLogin)
	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		if session != nil {
			c.Set(token.ContextSession, session)
		}
		c.Next()
	})
	authed.POST("/session/extend", h.Extend)
	authed.GET("/session", h.Session)
	authed.POST("/logout", h.Logout)
	return r
}

func singleSession() *entity.Session {
	return &entity.Session{
		AccessType:  entity.AccessSingle,
		Client:      &entity.ClientInfo{ID: 10, Name: "한빛자산운용", BrandColor: "#0B3D91"},
		CodeVersion: "v1",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestAccessHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC := &mockAccessUsecase{
			AuthenticateFunc: func(ctx context.Context, password string) (*entity.Session, string, error) {
				assert.Equal(t, "hanbit-2024", password)
				return singleSession(), "signed-token", nil
			},
		}
		r := setupRouter(NewAccessHandler(mockUC), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"hanbit-2024"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got dto.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "signed-token", got.Token)
		assert.Equal(t, "single", got.AccessType)
		require.NotNil(t, got.Client)
		assert.Equal(t, "한빛자산운용", got.Client.Name)
		assert.NotEmpty(t, got.Remaining)
	})

	t.Run("wrong password", func(t *testing.T) {
		r := setupRouter(NewAccessHandler(&mockAccessUsecase{}), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		r := setupRouter(NewAccessHandler(&mockAccessUsecase{}), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccessHandler_AdminLogin(t *testing.T) {
	mockUC := &mockAccessUsecase{
		AuthenticateAdminFunc: func(ctx context.Context, code string) (*entity.Session, string, error) {
			return &entity.Session{
				AccessType: entity.AccessAdmin,
				ExpiresAt:  time.Now().Add(2 * time.Hour),
			}, "admin-token", nil
		},
	}
	r := setupRouter(NewAccessHandler(mockUC), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"admin-code"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "admin", got.AccessType)
	assert.Nil(t, got.Client)
}

func TestAccessHandler_Extend(t *testing.T) {
	t.Run("renewed", func(t *testing.T) {
		mockUC := &mockAccessUsecase{
			ExtendFunc: func(ctx context.Context, session *entity.Session) (*entity.Session, string, error) {
				renewed := *session
				renewed.ExpiresAt = time.Now().Add(time.Hour)
				return &renewed, "renewed-token", nil
			},
		}
		r := setupRouter(NewAccessHandler(mockUC), singleSession())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/session/extend", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got dto.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "renewed-token", got.Token)
	})

	t.Run("revoked code", func(t *testing.T) {
		mockUC := &mockAccessUsecase{
			ExtendFunc: func(ctx context.Context, session *entity.Session) (*entity.Session, string, error) {
				return nil, "", usecase.ErrCodeRevoked
			},
		}
		r := setupRouter(NewAccessHandler(mockUC), singleSession())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/session/extend", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "revoked")
	})

	t.Run("backend failure", func(t *testing.T) {
		mockUC := &mockAccessUsecase{
			ExtendFunc: func(ctx context.Context, session *entity.Session) (*entity.Session, string, error) {
				return nil, "", errors.New("db down")
			},
		}
		r := setupRouter(NewAccessHandler(mockUC), singleSession())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/session/extend", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no session", func(t *testing.T) {
		r := setupRouter(NewAccessHandler(&mockAccessUsecase{}), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/session/extend", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccessHandler_Session(t *testing.T) {
	r := setupRouter(NewAccessHandler(&mockAccessUsecase{}), singleSession())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/session", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.Token, "reading the session does not mint a token")
	assert.Equal(t, "single", got.AccessType)
}

func TestAccessHandler_Logout(t *testing.T) {
	r := setupRouter(NewAccessHandler(&mockAccessUsecase{}), singleSession())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
