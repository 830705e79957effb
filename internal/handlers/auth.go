package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/identity"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/pkg/logger"
	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

// IdentityVerifier is the external identity collaborator, wired in main
// and replaced by a fake in tests.
var IdentityVerifier identity.Verifier

type sessionLoginInput struct {
	IDToken string `json:"idToken"`
}

// SessionLogin exchanges an identity assertion for a session token.
// Login never creates an account: the user row must already exist.
func SessionLogin(c *gin.Context) {
	var input sessionLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data received"})
		return
	}

	if input.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ID token provided"})
		return
	}

	ident, err := IdentityVerifier.Verify(input.IDToken)
	if err != nil {
		logger.Warn().Err(err).Msg("Identity token verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", ident.UID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	token, err := utils.GenerateSessionToken(user.ID, string(role), user.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(7*24*time.Hour/time.Second), "/", "", false, true)

	logger.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("Session created")
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Logout discards the session unconditionally. With an active session
// the token id is blacklisted until the token's own expiry; with no
// session it is still a success.
func Logout(c *gin.Context) {
	if v, exists := c.Get("claims"); exists {
		claims := v.(*utils.SessionClaims)
		ttl := time.Duration(0)
		if claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if err := database.BlacklistToken(claims.GetJTI(), ttl); err != nil {
			logger.Warn().Err(err).Msg("Failed to blacklist session token")
		}
		logger.Info().Str("user_id", claims.UserID).Msg("Logged out")
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUserData returns the current user's document.
func GetUserData(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User data not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user_data": user})
}

// DebugUserData dumps the user document plus the recent-view count.
func DebugUserData(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"user_data":          user,
		"recent_views_count": len(user.RecentViews),
	})
}
