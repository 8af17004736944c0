package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_backend/internal/feature/analytics/domain/entity"
)

type mockAnalyticsUsecase struct {
	PortfolioAnalyticsFunc func(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error)
}

func (m *mockAnalyticsUsecase) PortfolioAnalytics(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error) {
	if m.PortfolioAnalyticsFunc != nil {
		return m.PortfolioAnalyticsFunc(ctx, since)
	}
	return nil, nil
}

func setupRouter(h *AnalyticsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/analytics/portfolios", h.PortfolioViews)
	return r
}

func TestAnalyticsHandler_PortfolioViews(t *testing.T) {
	var gotSince time.Time
	mockUC := &mockAnalyticsUsecase{
		PortfolioAnalyticsFunc: func(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error) {
			gotSince = since
			return []entity.PortfolioViewCount{{PortfolioID: 1, Views: 12}}, nil
		},
	}
	r := setupRouter(NewAnalyticsHandler(mockUC))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/analytics/portfolios?days=7", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), gotSince, time.Minute)

	var got struct {
		Portfolios []entity.PortfolioViewCount `json:"portfolios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Portfolios, 1)
	assert.Equal(t, int64(12), got.Portfolios[0].Views)
}

func TestAnalyticsHandler_PortfolioViews_DefaultWindow(t *testing.T) {
	var gotSince time.Time
	mockUC := &mockAnalyticsUsecase{
		PortfolioAnalyticsFunc: func(ctx context.Context, since time.Time) ([]entity.PortfolioViewCount, error) {
			gotSince = since
			return nil, nil
		},
	}
	r := setupRouter(NewAnalyticsHandler(mockUC))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/analytics/portfolios", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -defaultWindowDays), gotSince, time.Minute)
}

func TestAnalyticsHandler_PortfolioViews_BadDays(t *testing.T) {
	r := setupRouter(NewAnalyticsHandler(&mockAnalyticsUsecase{}))

	for _, raw := range []string{"0", "-3", "abc"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/analytics/portfolios?days="+raw, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}
}
