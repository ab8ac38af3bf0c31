package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userSvc "tablescout/services/user"
	"tablescout/utils"
)

// ContextUserIDKey is the gin context key under which the authenticated user
// ID is stored.
const ContextUserIDKey = "userID"

// JWTAuthUserMiddleware rejects requests without a valid bearer token backed
// by a live session. The token hash must match the session record, so a
// logout invalidates outstanding tokens immediately.
func JWTAuthUserMiddleware(sessions userSvc.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session, err := sessions.Get(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}
		if session.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
