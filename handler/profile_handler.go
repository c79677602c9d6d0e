package handler

import (
	"main/dto"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	userID := c.GetString("user_id")

	user, err := usersRepo.FindByID(c.Request.Context(), userID)
	if err == repository.ErrUserNotFound {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		utils.TrackError("profile", "fetch_failed")
		utils.InternalError(c, "Failed to fetch profile")
		return
	}

	utils.Success(c, gin.H{"user": dto.ToUserResponse(user)})
}
