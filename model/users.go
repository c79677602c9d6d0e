package model

import "time"

type User struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	Username         string    `bson:"username" json:"username" validate:"required,min=3,max=30"`
	Email            string    `bson:"email" json:"email" validate:"required,email"`
	Password         string    `bson:"password" json:"-" validate:"required,password"`
	XP               int       `bson:"xp" json:"xp"`
	Level            int       `bson:"level" json:"level"`           // Display cache, always recomputed from XP
	Streak           int       `bson:"streak" json:"streak"`         // Consecutive login days
	LastLogin        time.Time `bson:"last_login" json:"last_login"` // Time of day ignored for streak purposes
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	RecoveryCodes    []string  `bson:"recovery_codes,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
}

type RegistrationRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
