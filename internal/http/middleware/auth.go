package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frbarbre/contacts-api/common/logger"
	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/service"
)

const userContextKey = "auth_user"

// RequireAuth rejects requests without a valid bearer token and stashes the
// resolved user for handlers downstream.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token is missing"})
			return
		}

		user, err := authService.Authenticate(ctx, token)
		if err != nil {
			slog.WarnContext(ctx, "rejected bearer token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		ctx = logger.WithLogFields(ctx, logger.LogFields{
			UserID: logger.Ptr(user.ID.Hex()),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set(userContextKey, user)

		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, with or
// without the "Bearer " prefix.
func BearerToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	return strings.TrimPrefix(token, "Bearer ")
}

// UserFromContext returns the authenticated user set by RequireAuth.
func UserFromContext(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
