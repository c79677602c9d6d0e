package model

import "time"

type ActionKind string

const (
	ActionCompleteTask ActionKind = "complete_task"
	ActionCreateNote   ActionKind = "create_note"
	ActionAddEvent     ActionKind = "add_event"
	ActionDailyLogin   ActionKind = "daily_login"
	ActionWeeklyStreak ActionKind = "weekly_streak"
)

// XPHistory is an append-only ledger entry. Entries are never mutated or deleted.
type XPHistory struct {
	EntryID   string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Action    ActionKind `bson:"action" json:"action"`
	XPGained  int        `bson:"xp_gained" json:"xp_gained"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}
