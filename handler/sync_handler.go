package handler

import (
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SyncHandler merges a guest session into the authenticated account. The
// guest token arrives in the X-Guest-Token header; the account comes from the
// JWT. A partial failure returns 207 with per-collection results so the client
// can retry just the collections that failed.
func SyncHandler(c *gin.Context, syncService *usecase.SyncService) {
	userID := c.GetString("user_id")

	token := c.GetHeader(middleware.GuestTokenHeader)
	if token == "" {
		utils.BadRequest(c, "Guest token is required")
		return
	}
	if _, err := uuid.Parse(token); err != nil {
		utils.BadRequest(c, "Invalid guest token")
		return
	}

	result, err := syncService.Merge(c.Request.Context(), userID, token)
	if err == usecase.ErrPartialMerge {
		utils.PartialFailure(c, "Some guest collections failed to merge", gin.H{
			"state":       result.State,
			"collections": result.Collections,
		})
		return
	}
	if err != nil {
		utils.TrackError("sync", "merge_failed")
		utils.InternalError(c, "Failed to sync guest data")
		return
	}

	utils.Success(c, gin.H{
		"state":       result.State,
		"collections": result.Collections,
	})
}
