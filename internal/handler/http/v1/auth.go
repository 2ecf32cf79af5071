package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/sirupsen/logrus"
)

// Ключи principal в контексте запроса
const (
	ctxUserIDKey    = "userID"
	ctxUserEmailKey = "userEmail"
)

// AuthMiddleware - middleware для аутентификации по Bearer JWT токену
func AuthMiddleware(tokens *auth.TokenManager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			log.Warn("Token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := tokens.VerifyToken(token)
		if err != nil {
			log.WithError(err).Warn("Token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserEmailKey, claims.Email)
		c.Next()
	}
}

// principalFromContext достает идентификатор и email аутентифицированного
// пользователя, положенные middleware
func principalFromContext(c *gin.Context) (int64, string) {
	userID, _ := c.Get(ctxUserIDKey)
	email, _ := c.Get(ctxUserEmailKey)

	id, _ := userID.(int64)
	em, _ := email.(string)
	return id, em
}
