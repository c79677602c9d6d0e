package handler

import (
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func ChangePasswordHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	if !utils.ValidatePassword(req.NewPassword) {
		utils.BadRequest(c, "Password must be at least 6 characters and contain at least one number")
		return
	}

	if err := userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if err == repository.ErrUserNotFound {
			utils.NotFound(c, "User not found")
			return
		}
		utils.TrackError("auth", "password_change_failed")
		utils.Unauthorized(c, "Incorrect current password")
		return
	}

	utils.Success(c, gin.H{"message": "Password changed successfully"})
}
