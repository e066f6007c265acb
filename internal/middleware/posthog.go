package middleware

import (
	"net/http"
	"strings"

	"github.com/finca-nomina/nomina_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are paths never sent to PostHog.
var untrackedPrefixes = []string{"/health", "/swagger", "/api/v1/auth"}

// PosthogMiddleware records one event per successful authenticated request.
// Events are named after the route template, e.g. "api_v1_loans_:loanID_cancel".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || isUntracked(c.Request.URL.Path) {
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

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if role, ok := GetRoleFromContext(c); ok {
			props["role"] = string(role)
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
