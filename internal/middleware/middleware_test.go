package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/customer_ledger_app/internal/middleware"
	"github.com/SscSPs/customer_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		fromCtx, _ := middleware.GetUserIDFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "found": ok, "from_ctx": fromCtx})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	access, err := utils.GenerateJWT("user-1", testSecret, time.Minute, "test", utils.AccessTokenType)
	require.NoError(t, err)
	refresh, err := utils.GenerateJWT("user-1", testSecret, time.Minute, "test", utils.RefreshTokenType)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-1", testSecret, -time.Minute, "test", utils.AccessTokenType)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-1", "other-secret", time.Minute, "test", utils.AccessTokenType)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid access token", "Bearer " + access, http.StatusOK, `{"user_id":"user-1","found":true,"from_ctx":"user-1"}`},
		{"lowercase scheme", "bearer " + access, http.StatusOK, `{"user_id":"user-1","found":true,"from_ctx":"user-1"}`},
		{"missing header", "", http.StatusUnauthorized, `{"error":"Authentication credentials were not provided"}`},
		{"wrong scheme", "Basic " + access, http.StatusUnauthorized, `{"error":"Authorization header format must be Bearer {token}"}`},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized, `{"error":"Invalid token"}`},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, `{"error":"Token has expired"}`},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, `{"error":"Invalid token"}`},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestStructuredLoggingMiddleware_SetsRequestLogger(t *testing.T) {
	base := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		assert.NotSame(t, slog.Default(), logger)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestRateLimit(t *testing.T) {
	limiter, err := middleware.NewMemoryRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/token", middleware.RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryRateLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryRateLimiter("five per minute")
	assert.Error(t, err)
}

func TestEventNameForRoute(t *testing.T) {
	assert.Equal(t, "post_app_customers", middleware.EventNameForRoute(http.MethodPost, "/app/customers/"))
	assert.Equal(t, "patch_app_customers_id", middleware.EventNameForRoute(http.MethodPatch, "/app/customers/:id/"))
	assert.Equal(t, "get_app_customers_id_summary", middleware.EventNameForRoute(http.MethodGet, "/app/customers/:id/summary/"))
	assert.Empty(t, middleware.EventNameForRoute(http.MethodGet, "/"))
	assert.Empty(t, middleware.EventNameForRoute(http.MethodGet, ""))
}

func TestPosthogMiddleware_DisabledClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/app/customers/", middleware.PosthogMiddleware(&utils.PosthogClientWrapper{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app/customers/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
