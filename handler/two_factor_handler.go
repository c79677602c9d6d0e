package handler

import (
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type twoFactorVerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// Enable2FAHandler generates a TOTP secret for the account. The secret is
// stored disabled until VerifyAndActivate2FAHandler confirms the user's
// authenticator produces matching codes.
func Enable2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	userID := c.GetString("user_id")

	user, err := usersRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.TwoFactorEnabled {
		utils.Conflict(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "QuestBoard",
		AccountName: user.Email,
	})
	if err != nil {
		utils.TrackError("auth", "2fa_secret_generation")
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	if err := usersRepo.SetTwoFactor(c.Request.Context(), userID, false, key.Secret(), nil); err != nil {
		utils.TrackError("auth", "2fa_secret_store")
		utils.InternalError(c, "Failed to store 2FA secret")
		return
	}

	utils.Success(c, gin.H{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
	})
}

// VerifyAndActivate2FAHandler turns 2FA on once the user proves they hold the
// secret, and hands back one-time recovery codes.
func VerifyAndActivate2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	userID := c.GetString("user_id")

	var req twoFactorVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Verification code is required")
		return
	}

	user, err := usersRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.TwoFactorSecret == "" {
		utils.BadRequest(c, "2FA setup has not been started")
		return
	}
	if user.TwoFactorEnabled {
		utils.Conflict(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa_activation")
		utils.Unauthorized(c, "Invalid verification code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes(8)
	if err != nil {
		utils.TrackError("auth", "recovery_code_generation")
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	if err := usersRepo.SetTwoFactor(c.Request.Context(), userID, true, user.TwoFactorSecret, recoveryCodes); err != nil {
		utils.TrackError("auth", "2fa_activation")
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.TrackAuthAttempt("success", "2fa_activation")
	utils.Success(c, gin.H{
		"message":        "2FA enabled",
		"recovery_codes": recoveryCodes,
	})
}

// Disable2FAHandler turns 2FA off after a final valid code.
func Disable2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	userID := c.GetString("user_id")

	var req twoFactorVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Verification code is required")
		return
	}

	user, err := usersRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) && !consumeRecoveryCode(user.RecoveryCodes, req.Code) {
		utils.TrackAuthAttempt("failure", "2fa_disable")
		utils.Unauthorized(c, "Invalid verification code")
		return
	}

	if err := usersRepo.SetTwoFactor(c.Request.Context(), userID, false, "", []string{}); err != nil {
		utils.TrackError("auth", "2fa_disable")
		utils.InternalError(c, "Failed to disable 2FA")
		return
	}

	utils.Success(c, gin.H{"message": "2FA disabled"})
}

func consumeRecoveryCode(codes []string, candidate string) bool {
	for _, code := range codes {
		if code == candidate {
			return true
		}
	}
	return false
}
