package dto

import (
	"time"

	"main/model"
)

type XPHistoryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	XPGained  int       `json:"xp_gained"`
	CreatedAt time.Time `json:"created_at"`
}

func ToXPHistoryResponses(entries []*model.XPHistory) []XPHistoryResponse {
	responses := make([]XPHistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = XPHistoryResponse{
			ID:        entry.EntryID,
			Action:    string(entry.Action),
			XPGained:  entry.XPGained,
			CreatedAt: entry.CreatedAt,
		}
	}
	return responses
}
