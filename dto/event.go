package dto

import (
	"time"

	"main/model"
)

type EventResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	AllDay      bool       `json:"all_day"`
	Color       string     `json:"color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToEventResponse(event *model.Event) EventResponse {
	response := EventResponse{
		ID:          event.EventID,
		Title:       event.Title,
		Description: event.Description,
		StartDate:   event.StartDate,
		AllDay:      event.AllDay,
		Color:       event.Color,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}

	if !event.EndDate.IsZero() {
		response.EndDate = &event.EndDate
	}

	return response
}

func ToEventResponses(events []*model.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = ToEventResponse(event)
	}
	return responses
}
