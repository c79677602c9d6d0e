package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// EventStore is the slice of the events repository this service needs.
type EventStore interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	GetUserEvents(ctx context.Context, userID string, start, end time.Time) ([]*model.Event, error)
	GetEvent(ctx context.Context, eventID string, userID string) (*model.Event, error)
	UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.Event) error
	DeleteEvent(ctx context.Context, eventID string, userID string) error
}

type EventsService struct {
	EventsRepo EventStore
	Rewards    Rewarder
}

func NewEventsService(eventsRepo EventStore, rewards Rewarder) *EventsService {
	return &EventsService{EventsRepo: eventsRepo, Rewards: rewards}
}

// CreateEvent persists a calendar event and then grants the add_event reward.
// A reward failure after the event is durable is logged as a warning, never
// returned as an error.
func (svc *EventsService) CreateEvent(ctx context.Context, event *model.Event) (*RewardResult, error) {
	if event.UserID == "" {
		return nil, errors.New("user ID is required")
	}
	if event.Title == "" {
		return nil, errors.New("title is required")
	}
	if event.StartDate.IsZero() {
		return nil, errors.New("start date is required")
	}
	if !event.EndDate.IsZero() && event.EndDate.Before(event.StartDate) {
		return nil, errors.New("end date cannot be before start date")
	}

	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}

	if err := svc.EventsRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	reward, err := svc.Rewards.Award(ctx, event.UserID, model.ActionAddEvent)
	if err != nil {
		// The event already persisted; losing the reward is a warning, not a
		// failed create.
		log.Printf("Warning: creation reward failed for event %s user %s: %v", event.EventID, event.UserID, err)
		utils.TrackError("rewards", "event_creation_award_failed")
		return nil, nil
	}
	return reward, nil
}

func (svc *EventsService) GetUserEvents(ctx context.Context, userID string, start, end time.Time) ([]*model.Event, error) {
	return svc.EventsRepo.GetUserEvents(ctx, userID, start, end)
}

func (svc *EventsService) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.Event) (*model.Event, error) {
	existing, err := svc.EventsRepo.GetEvent(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if updates.Title == "" {
		updates.Title = existing.Title
	}
	if updates.StartDate.IsZero() {
		updates.StartDate = existing.StartDate
	}
	if updates.Color == "" {
		updates.Color = existing.Color
	}
	if !updates.EndDate.IsZero() && updates.EndDate.Before(updates.StartDate) {
		return nil, errors.New("end date cannot be before start date")
	}

	if err := svc.EventsRepo.UpdateEvent(ctx, eventID, userID, updates); err != nil {
		return nil, err
	}
	return svc.EventsRepo.GetEvent(ctx, eventID, userID)
}

func (svc *EventsService) DeleteEvent(ctx context.Context, eventID string, userID string) error {
	return svc.EventsRepo.DeleteEvent(ctx, eventID, userID)
}
