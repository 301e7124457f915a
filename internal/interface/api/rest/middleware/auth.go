package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/jwt"
)

const CtxUserID = "userID"

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserID, user.ID(claims.UserID))

		c.Next()
	}
}

// UserID returns the identity set by AuthMiddleware for the current request.
func UserID(c *gin.Context) (user.ID, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(user.ID)

	return id, ok
}
