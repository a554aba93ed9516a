package middleware

import (
	"net/http"
	"strings"

	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// Identity is minted externally; these middlewares only verify the bearer
// token and expose the actor to handlers.

// ClientAuthMiddleware requires a valid token and sets clientID/isAdmin.
// Admin tokens pass too, so admin tooling can act on client endpoints.
func ClientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := bearerClaims(c)
		if !ok {
			return
		}
		c.Set("clientID", subject)
		c.Set("isAdmin", role == "admin")
		c.Next()
	}
}

// AdminAuthMiddleware requires a valid token carrying the admin role.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := bearerClaims(c)
		if !ok {
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Set("clientID", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}

// bearerClaims validates the Authorization header and returns its claims.
// On failure it aborts the request and returns ok=false.
func bearerClaims(c *gin.Context) (subject, role string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := utils.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return "", "", false
	}
	subject, role, err = utils.TokenClaims(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return "", "", false
	}
	return subject, role, true
}
