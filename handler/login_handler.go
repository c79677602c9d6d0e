package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService, rewardsService *usecase.RewardsService, sessionRepo *repository.SessionRepo) {
	var loginReq model.LoginRequest

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.UsersRepo.FindByEmail(c.Request.Context(), loginReq.Email)
	if err != nil {
		utils.TrackAuthAttempt("failure", "user_not_found")
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	checkPassword, err := services.VerifyPassword(user.Password, loginReq.Password)
	if err != nil || !checkPassword {
		utils.TrackAuthAttempt("failure", "invalid_password")
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	// 2FA handling
	if user.TwoFactorEnabled {
		if loginReq.TwoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			utils.Success(c, gin.H{
				"requires_2fa": true,
				"message":      "2FA code required",
			})
			return
		}

		if !totp.Validate(loginReq.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "invalid_2fa")
			utils.Unauthorized(c, "Invalid 2FA code")
			return
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	// Streak evaluation and login bonuses. The streak update persists before
	// any XP moves so a reward failure can't desync the streak.
	streak, err := userService.ProcessLogin(c.Request.Context(), user, time.Now())
	if err != nil {
		utils.TrackError("auth", "streak_update")
		utils.InternalError(c, "Failed to process login")
		return
	}

	var reward *usecase.RewardResult
	if streak.BonusXP > 0 {
		reward, err = rewardsService.AwardLogin(c.Request.Context(), user.UserID, streak)
		if err != nil {
			utils.TrackError("rewards", "login_bonus_failed")
			utils.InternalError(c, "Failed to grant login bonus")
			return
		}
		if reward != nil {
			user.XP = reward.NewXP
			user.Level = reward.NewLevel
		}
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

	utils.TrackAuthAttempt("success", "login")

	response := gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    dto.ToUserResponse(user),
		"streak":  streak.NewStreak,
	}
	if reward != nil {
		response["xp_gained"] = reward.XPGained
		response["new_xp"] = reward.NewXP
		response["new_level"] = reward.NewLevel
		response["weekly_bonus"] = streak.WeeklyBonus
	}

	utils.Success(c, response)
}
