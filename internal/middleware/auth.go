package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

// SessionCookieName is the cookie set by the login exchange. Tokens are
// also accepted via the Authorization header for non-browser clients.
const SessionCookieName = "session"

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		// Non-Bearer header, the cookie may still carry a session
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SessionAuth rejects requests without a valid, unrevoked session token
// and places the session state {userId, role, email} into the request
// context. No session data lives outside the request.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not logged in"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired session: " + err.Error()})
			c.Abort()
			return
		}

		if database.IsTokenBlacklisted(claims.GetJTI()) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Session has been revoked"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Set("email", claims.Email)
		c.Set("claims", claims)

		c.Next()
	}
}

// OptionalSessionAuth sets the session context if a valid token is
// present but never aborts. Content reads use it so view tracking can
// piggyback on authenticated requests.
func OptionalSessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil || database.IsTokenBlacklisted(claims.GetJTI()) {
			// Treat as anonymous
			c.Next()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Set("email", claims.Email)
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRole gates a route group on the role carried by the session.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionRole, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not logged in"})
			c.Abort()
			return
		}

		if sessionRole.(string) != string(role) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
