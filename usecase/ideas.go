package usecase

import (
	"context"
	"errors"

	"main/model"

	"github.com/google/uuid"
)

// IdeaStore is the slice of the ideas repository this service needs.
type IdeaStore interface {
	CreateIdea(ctx context.Context, idea *model.Idea) error
	GetUserIdeas(ctx context.Context, userID string) ([]*model.Idea, error)
	GetIdea(ctx context.Context, ideaID string, userID string) (*model.Idea, error)
	UpdateIdea(ctx context.Context, ideaID string, userID string, updates *model.Idea) error
	DeleteIdea(ctx context.Context, ideaID string, userID string) error
}

// IdeasService has no reward path; capturing an idea earns nothing.
type IdeasService struct {
	IdeasRepo IdeaStore
}

func NewIdeasService(ideasRepo IdeaStore) *IdeasService {
	return &IdeasService{IdeasRepo: ideasRepo}
}

func (svc *IdeasService) CreateIdea(ctx context.Context, idea *model.Idea) error {
	if idea.UserID == "" {
		return errors.New("user ID is required")
	}
	if idea.Title == "" || idea.Content == "" {
		return errors.New("title and content are required")
	}

	validTags, err := validateTags(idea.Tags)
	if err != nil {
		return err
	}
	idea.Tags = validTags

	if idea.IdeaID == "" {
		idea.IdeaID = uuid.New().String()
	}

	return svc.IdeasRepo.CreateIdea(ctx, idea)
}

func (svc *IdeasService) GetUserIdeas(ctx context.Context, userID string) ([]*model.Idea, error) {
	return svc.IdeasRepo.GetUserIdeas(ctx, userID)
}

func (svc *IdeasService) UpdateIdea(ctx context.Context, ideaID string, userID string, updates *model.Idea) (*model.Idea, error) {
	existing, err := svc.IdeasRepo.GetIdea(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}

	if updates.Title == "" {
		updates.Title = existing.Title
	}
	if updates.Content == "" {
		updates.Content = existing.Content
	}

	validTags, err := validateTags(updates.Tags)
	if err != nil {
		return nil, err
	}
	updates.Tags = validTags

	if err := svc.IdeasRepo.UpdateIdea(ctx, ideaID, userID, updates); err != nil {
		return nil, err
	}
	return svc.IdeasRepo.GetIdea(ctx, ideaID, userID)
}

func (svc *IdeasService) DeleteIdea(ctx context.Context, ideaID string, userID string) error {
	return svc.IdeasRepo.DeleteIdea(ctx, ideaID, userID)
}
