package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(2, time.Minute)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))

	// Other keys have their own budget.
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestLimiter_WindowReset(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	current := time.Now()
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))

	current = current.Add(61 * time.Second)
	assert.True(t, l.Allow("1.2.3.4"))
}

func TestLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := NewLimiter(1, time.Minute)
	r.POST("/login", l.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req2, _ := http.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(second, req2)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
