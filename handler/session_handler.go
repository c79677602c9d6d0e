package handler

import (
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
)

// CreateSession records a device session for a fresh login, parsing the
// User-Agent header into device/browser/OS fields.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) error {
	ua := useragent.Parse(c.Request.UserAgent())

	device := ua.Device
	if device == "" {
		if ua.Mobile {
			device = "Mobile"
		} else if ua.Tablet {
			device = "Tablet"
		} else {
			device = "Desktop"
		}
	}

	sessionDuration := utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour)
	now := time.Now()

	session := &model.Session{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		Device:     device,
		Browser:    ua.Name,
		OS:         ua.OS,
		IPAddress:  c.ClientIP(),
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(sessionDuration),
		IsActive:   true,
	}

	return sessionRepo.CreateSession(c.Request.Context(), session)
}

func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	sessions, err := sessionRepo.GetActiveSessions(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("session", "list_failed")
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.Success(c, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func EndSessionHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.BadRequest(c, "Session ID is required")
		return
	}

	err := sessionRepo.EndSession(c.Request.Context(), sessionID)
	if err == repository.ErrSessionNotFound {
		utils.NotFound(c, "Session not found")
		return
	}
	if err != nil {
		utils.TrackError("session", "end_failed")
		utils.InternalError(c, "Failed to end session")
		return
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

func EndAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	if err := sessionRepo.EndAllSessions(c.Request.Context(), userID); err != nil {
		utils.TrackError("session", "end_all_failed")
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	utils.Success(c, gin.H{"message": "All sessions ended"})
}
