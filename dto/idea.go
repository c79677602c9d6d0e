package dto

import (
	"time"

	"main/model"
)

type IdeaResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToIdeaResponse(idea *model.Idea) IdeaResponse {
	return IdeaResponse{
		ID:        idea.IdeaID,
		Title:     idea.Title,
		Content:   idea.Content,
		Tags:      idea.Tags,
		CreatedAt: idea.CreatedAt,
		UpdatedAt: idea.UpdatedAt,
	}
}

func ToIdeaResponses(ideas []*model.Idea) []IdeaResponse {
	responses := make([]IdeaResponse, len(ideas))
	for i, idea := range ideas {
		responses[i] = ToIdeaResponse(idea)
	}
	return responses
}
