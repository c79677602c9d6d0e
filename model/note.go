package model

import "time"

type Note struct {
	NoteID    string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Title     string    `bson:"title" json:"title" binding:"required"`
	Content   string    `bson:"content" json:"content" binding:"required"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Pinned    bool      `bson:"pinned" json:"pinned"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
