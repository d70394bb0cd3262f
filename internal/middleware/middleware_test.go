package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nepalicrafts/storefront_api/internal/middleware"
	"github.com/nepalicrafts/storefront_api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusOK)
	})

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"msg":"inside handler"`)
		assert.Contains(t, buf.String(), `"request_id":"`+w.Header().Get("X-Request-ID")+`"`)
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
	})

	t.Run("reuses an upstream request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "edge-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "edge-123", w.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"request_id":"edge-123"`)
	})
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/admin", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, userID)
	})

	token := func(role string, ttl time.Duration) string {
		tok, err := utils.GenerateAdminToken("admin-7", role, secret, ttl, "tests")
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"expired", "Bearer " + token(utils.AdminRole, -time.Minute), http.StatusUnauthorized},
		{"not admin", "Bearer " + token("customer", time.Hour), http.StatusForbidden},
		{"admin", "Bearer " + token(utils.AdminRole, time.Hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin-7", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	l, err := middleware.NewIPRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/rates", middleware.RateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rates", nil))
		codes = append(codes, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewIPRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewIPRateLimiter("lots")
	assert.Error(t, err)
}

func TestPosthogMiddleware_UninitialisedClientIsNoop(t *testing.T) {
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(&utils.PosthogClientWrapper{}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
}
