package model

import "time"

type Session struct {
	SessionID  string    `bson:"session_id" json:"session_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Device     string    `bson:"device" json:"device"`
	Browser    string    `bson:"browser" json:"browser"`
	OS         string    `bson:"os" json:"os"`
	IPAddress  string    `bson:"ip_address" json:"ip_address"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	LastActive time.Time `bson:"last_active" json:"last_active"`
	ExpiresAt  time.Time `bson:"expires_at" json:"expires_at"`
	IsActive   bool      `bson:"is_active" json:"is_active"`
}
