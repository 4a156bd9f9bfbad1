package middleware

import (
	"net/http"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware authenticates requests through the session cookie.
func SessionMiddleware(sessionService auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.SessionCookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			c.Abort()
			return
		}

		userID, err := sessionService.ValidateToken(cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// UserID returns the authenticated user of the request. Only valid behind
// SessionMiddleware.
func UserID(c *gin.Context) int {
	return c.GetInt("user_id")
}
