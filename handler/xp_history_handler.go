package handler

import (
	"strconv"

	"main/dto"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 1000

// GetXPHistoryHandler lists the account's XP ledger, newest first. The limit
// query parameter caps the page; zero means everything.
func GetXPHistoryHandler(c *gin.Context, xpHistoryRepo *repository.XPHistoryRepo) {
	userID := c.GetString("user_id")

	limit := int64(utils.GetEnvAsInt("XP_HISTORY_DEFAULT_LIMIT", 50))
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			utils.BadRequest(c, "Invalid limit")
			return
		}
		if parsed > maxHistoryLimit {
			parsed = maxHistoryLimit
		}
		limit = parsed
	}

	entries, err := xpHistoryRepo.GetUserHistory(c.Request.Context(), userID, limit)
	if err != nil {
		utils.TrackError("xp_history", "fetch_failed")
		utils.InternalError(c, "Failed to fetch XP history")
		return
	}

	utils.Success(c, gin.H{
		"history": dto.ToXPHistoryResponses(entries),
		"count":   len(entries),
	})
}
