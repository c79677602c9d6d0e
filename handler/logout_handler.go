package handler

import (
	"log"
	"strings"

	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler blacklists the presented token so it can't be replayed and
// ends the account's active sessions.
func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.Unauthorized(c, "Missing authorization header")
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := services.BlacklistToken(token); err != nil {
		utils.TrackError("auth", "logout_failed")
		utils.InternalError(c, "Failed to log out")
		return
	}

	if err := sessionRepo.EndAllSessions(c.Request.Context(), userID); err != nil {
		// The token is already dead; a lingering session record is cosmetic.
		log.Printf("Warning: failed to end sessions for user %s on logout: %v", userID, err)
		utils.TrackError("session", "end_on_logout_failed")
	}

	utils.TrackAuthAttempt("success", "logout")
	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
