package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/customer_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful authenticated API calls.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventNameForRoute(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventNameForRoute derives an analytics event name from a route pattern,
// e.g. ("POST", "/app/customers/:id/") -> "post_app_customers_id".
func EventNameForRoute(method string, fullPath string) string {
	trimmed := strings.Trim(fullPath, "/")
	if trimmed == "" {
		return ""
	}
	name := strings.NewReplacer("/", "_", ":", "", "*", "").Replace(trimmed)
	return strings.ToLower(method) + "_" + name
}
