package middleware

import (
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	userIDKey    = contextKey("userID")
	roleKey      = contextKey("role")
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return v, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// GetRoleFromContext retrieves the role claim of the authenticated user.
func GetRoleFromContext(c *gin.Context) (domain.RoleName, bool) {
	if v, exists := c.Get(string(roleKey)); exists {
		role, ok := v.(domain.RoleName)
		return role, ok
	}
	if role, ok := c.Request.Context().Value(roleKey).(domain.RoleName); ok {
		return role, true
	}
	return "", false
}

// GetActorFromContext assembles the acting user of a request.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, _ := GetRoleFromContext(c)
	return domain.Actor{UserID: userID, Role: role, IPAddress: c.ClientIP()}, true
}
