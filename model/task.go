package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	TaskID      string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Completed   bool      `bson:"completed" json:"completed"`
	Priority    Priority  `bson:"priority" json:"priority"`
	DueDate     time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
