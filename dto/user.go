package dto

import (
	"time"

	"main/model"
	"main/services"
)

type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	XP            int       `json:"xp"`
	Level         int       `json:"level"`
	XPToNextLevel int       `json:"xp_to_next_level"`
	AvatarShape   string    `json:"avatar_shape"`
	Streak        int       `json:"streak"`
	LastLogin     time.Time `json:"last_login"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToUserResponse derives the display fields from XP rather than trusting the
// stored level cache.
func ToUserResponse(user *model.User) UserResponse {
	level := services.CalculateLevel(user.XP)
	return UserResponse{
		ID:            user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		XP:            user.XP,
		Level:         level,
		XPToNextLevel: services.XPToNextLevel(user.XP),
		AvatarShape:   services.AvatarShape(level),
		Streak:        user.Streak,
		LastLogin:     user.LastLogin,
		CreatedAt:     user.CreatedAt,
	}
}
