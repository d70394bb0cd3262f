package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nepalicrafts/storefront_api/internal/utils"
)

// visitorIDHeader is set by the storefront to an anonymous visitor id.
const visitorIDHeader = "X-Visitor-ID"

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that captures successful
// requests as PostHog events named after the route, e.g. "api_v1_currency_rates".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		eventName = strings.ReplaceAll(eventName, ":", "")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		for _, q := range []string{"country", "currency"} {
			if v := c.Query(q); v != "" {
				props[q] = v
			}
		}

		posthogClient.Enqueue(distinctID(c), eventName, props)
	}
}

func distinctID(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return userID
	}
	if visitor := c.GetHeader(visitorIDHeader); visitor != "" {
		return visitor
	}
	return "anonymous:" + c.ClientIP()
}
