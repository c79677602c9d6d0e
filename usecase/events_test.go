package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

type fakeEventStore struct {
	events map[string]*model.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[string]*model.Event)}
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, event *model.Event) error {
	f.events[event.EventID] = event
	return nil
}

func (f *fakeEventStore) GetUserEvents(ctx context.Context, userID string, start, end time.Time) ([]*model.Event, error) {
	var out []*model.Event
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) GetEvent(ctx context.Context, eventID string, userID string) (*model.Event, error) {
	event, ok := f.events[eventID]
	if !ok || event.UserID != userID {
		return nil, errors.New("event not found")
	}
	return event, nil
}

func (f *fakeEventStore) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.Event) error {
	event, err := f.GetEvent(ctx, eventID, userID)
	if err != nil {
		return err
	}
	event.Title = updates.Title
	event.StartDate = updates.StartDate
	event.EndDate = updates.EndDate
	return nil
}

func (f *fakeEventStore) DeleteEvent(ctx context.Context, eventID string, userID string) error {
	if _, err := f.GetEvent(ctx, eventID, userID); err != nil {
		return err
	}
	delete(f.events, eventID)
	return nil
}

func TestCreateEventGrantsReward(t *testing.T) {
	store := newFakeEventStore()
	rewards := &recordingRewarder{}
	svc := NewEventsService(store, rewards)

	reward, err := svc.CreateEvent(context.Background(), &model.Event{
		UserID:    "u1",
		Title:     "standup",
		StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if reward == nil {
		t.Fatal("expected a reward for event creation")
	}
	if len(rewards.awards) != 1 || rewards.awards[0] != model.ActionAddEvent {
		t.Errorf("awards = %v, want [add_event]", rewards.awards)
	}
}

func TestCreateEventRewardFailureIsNonFatal(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventsService(store, &failingRewarder{err: errors.New("xp increment failed")})

	reward, err := svc.CreateEvent(context.Background(), &model.Event{
		UserID:    "u1",
		Title:     "standup",
		StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateEvent returned error despite persisted event: %v", err)
	}
	if reward != nil {
		t.Errorf("reward = %+v, want nil when the grant fails", reward)
	}
	if len(store.events) != 1 {
		t.Errorf("stored events = %d, want 1", len(store.events))
	}
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	svc := NewEventsService(newFakeEventStore(), &recordingRewarder{})

	start := time.Now()
	_, err := svc.CreateEvent(context.Background(), &model.Event{
		UserID:    "u1",
		Title:     "standup",
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	})
	if err == nil {
		t.Error("expected error for end date before start date")
	}
}
