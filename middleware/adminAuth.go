package middleware

import (
	"net/http"
	"strings"

	"spacehub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware validates the operator's bearer token and checks the
// Redis session cache so revoked sessions stop working immediately.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		key := utils.AuthCachePrefix + utils.HashToken(tokenString)
		cached, err := utils.GetAuthCacheClient().Get(c.Request.Context(), key).Result()
		if err != nil || cached != adminID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
