package model

import "time"

const DefaultEventColor = "#3b82f6"

type Event struct {
	EventID     string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   time.Time `bson:"start_date" json:"start_date" binding:"required"`
	EndDate     time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	AllDay      bool      `bson:"all_day" json:"all_day"`
	Color       string    `bson:"color" json:"color"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
