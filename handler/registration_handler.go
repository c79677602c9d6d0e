package handler

import (
	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	var req model.RegistrationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, "Invalid request")
		return
	}

	if !utils.ValidatePassword(req.Password) {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, "Password must be at least 6 characters and contain at least one number")
		return
	}

	user, err := userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailTaken:
			utils.Conflict(c, "Email already registered")
		case usecase.ErrUsernameTaken:
			utils.Conflict(c, "Username already exists")
		default:
			utils.TrackError("auth", "registration_failed")
			utils.InternalError(c, "Registration failed")
		}
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	if err := CreateSession(c, user.UserID, sessionRepo); err != nil {
		utils.TrackError("session", "creation")
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.TrackAuthAttempt("success", "register")

	utils.Created(c, gin.H{
		"token": token,
		"user":  dto.ToUserResponse(user),
	})
}
