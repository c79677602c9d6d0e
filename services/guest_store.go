package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"main/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrGuestEntityNotFound = errors.New("guest entity not found")

// GuestDataTTL bounds how long an unsynced guest session is kept. Expiry is
// the accepted data-loss mode for guests who never authenticate.
const GuestDataTTL = 30 * 24 * time.Hour

// GuestStore holds entities created by unauthenticated sessions. Each guest
// token maps to four Redis hashes, one per collection, keyed by locally
// generated identifiers. Entities live here until a sync merges them into an
// account or the TTL runs out.
type GuestStore struct {
	client *redis.Client
}

func NewGuestStore(client *redis.Client) *GuestStore {
	return &GuestStore{client: client}
}

// NewGuestToken issues an opaque token identifying a guest session.
func NewGuestToken() string {
	return uuid.New().String()
}

func guestKey(token string, kind model.GuestCollection) string {
	return fmt.Sprintf("guest:%s:%s", token, kind)
}

func (s *GuestStore) put(ctx context.Context, token string, kind model.GuestCollection, id string, entity interface{}) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal guest entity: %w", err)
	}

	key := guestKey(token, kind)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, id, data)
	pipe.Expire(ctx, key, GuestDataTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store guest entity: %w", err)
	}
	return nil
}

func (s *GuestStore) get(ctx context.Context, token string, kind model.GuestCollection, id string, out interface{}) error {
	data, err := s.client.HGet(ctx, guestKey(token, kind), id).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrGuestEntityNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(data), out)
}

func (s *GuestStore) delete(ctx context.Context, token string, kind model.GuestCollection, id string) error {
	removed, err := s.client.HDel(ctx, guestKey(token, kind), id).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrGuestEntityNotFound
	}
	return nil
}

// Notes

func (s *GuestStore) CreateNote(ctx context.Context, token string, note *model.Note) (*model.Note, error) {
	note.NoteID = uuid.New().String()
	note.UserID = ""
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	if err := s.put(ctx, token, model.GuestNotes, note.NoteID, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *GuestStore) UpdateNote(ctx context.Context, token string, id string, upd *model.NoteUpdate) (*model.Note, error) {
	var note model.Note
	if err := s.get(ctx, token, model.GuestNotes, id, &note); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Content != nil {
		note.Content = *upd.Content
	}
	if upd.Tags != nil {
		note.Tags = *upd.Tags
	}
	if upd.Pinned != nil {
		note.Pinned = *upd.Pinned
	}
	note.UpdatedAt = time.Now()

	if err := s.put(ctx, token, model.GuestNotes, id, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *GuestStore) DeleteNote(ctx context.Context, token string, id string) error {
	return s.delete(ctx, token, model.GuestNotes, id)
}

func (s *GuestStore) ListNotes(ctx context.Context, token string) ([]*model.Note, error) {
	raw, err := s.client.HGetAll(ctx, guestKey(token, model.GuestNotes)).Result()
	if err != nil {
		return nil, err
	}

	notes := make([]*model.Note, 0, len(raw))
	for _, data := range raw {
		var note model.Note
		if err := json.Unmarshal([]byte(data), &note); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}
	sortNotes(notes)
	return notes, nil
}

// Tasks

func (s *GuestStore) CreateTask(ctx context.Context, token string, task *model.Task) (*model.Task, error) {
	task.TaskID = uuid.New().String()
	task.UserID = ""
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt

	if err := s.put(ctx, token, model.GuestTasks, task.TaskID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *GuestStore) UpdateTask(ctx context.Context, token string, id string, upd *model.TaskUpdate) (*model.Task, error) {
	var task model.Task
	if err := s.get(ctx, token, model.GuestTasks, id, &task); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		task.DueDate = *upd.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.put(ctx, token, model.GuestTasks, id, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *GuestStore) DeleteTask(ctx context.Context, token string, id string) error {
	return s.delete(ctx, token, model.GuestTasks, id)
}

func (s *GuestStore) ListTasks(ctx context.Context, token string) ([]*model.Task, error) {
	raw, err := s.client.HGetAll(ctx, guestKey(token, model.GuestTasks)).Result()
	if err != nil {
		return nil, err
	}

	tasks := make([]*model.Task, 0, len(raw))
	for _, data := range raw {
		var task model.Task
		if err := json.Unmarshal([]byte(data), &task); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}
	sortTasks(tasks)
	return tasks, nil
}

// Ideas

func (s *GuestStore) CreateIdea(ctx context.Context, token string, idea *model.Idea) (*model.Idea, error) {
	idea.IdeaID = uuid.New().String()
	idea.UserID = ""
	idea.CreatedAt = time.Now()
	idea.UpdatedAt = idea.CreatedAt

	if err := s.put(ctx, token, model.GuestIdeas, idea.IdeaID, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *GuestStore) UpdateIdea(ctx context.Context, token string, id string, upd *model.IdeaUpdate) (*model.Idea, error) {
	var idea model.Idea
	if err := s.get(ctx, token, model.GuestIdeas, id, &idea); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		idea.Title = *upd.Title
	}
	if upd.Content != nil {
		idea.Content = *upd.Content
	}
	if upd.Tags != nil {
		idea.Tags = *upd.Tags
	}
	idea.UpdatedAt = time.Now()

	if err := s.put(ctx, token, model.GuestIdeas, id, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (s *GuestStore) DeleteIdea(ctx context.Context, token string, id string) error {
	return s.delete(ctx, token, model.GuestIdeas, id)
}

func (s *GuestStore) ListIdeas(ctx context.Context, token string) ([]*model.Idea, error) {
	raw, err := s.client.HGetAll(ctx, guestKey(token, model.GuestIdeas)).Result()
	if err != nil {
		return nil, err
	}

	ideas := make([]*model.Idea, 0, len(raw))
	for _, data := range raw {
		var idea model.Idea
		if err := json.Unmarshal([]byte(data), &idea); err != nil {
			return nil, err
		}
		ideas = append(ideas, &idea)
	}
	sort.Slice(ideas, func(i, j int) bool {
		return ideas[i].CreatedAt.After(ideas[j].CreatedAt)
	})
	return ideas, nil
}

// Events

func (s *GuestStore) CreateEvent(ctx context.Context, token string, event *model.Event) (*model.Event, error) {
	event.EventID = uuid.New().String()
	event.UserID = ""
	if event.Color == "" {
		event.Color = model.DefaultEventColor
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	if err := s.put(ctx, token, model.GuestEvents, event.EventID, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *GuestStore) UpdateEvent(ctx context.Context, token string, id string, upd *model.EventUpdate) (*model.Event, error) {
	var event model.Event
	if err := s.get(ctx, token, model.GuestEvents, id, &event); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}
	if upd.StartDate != nil {
		event.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		event.EndDate = *upd.EndDate
	}
	if upd.AllDay != nil {
		event.AllDay = *upd.AllDay
	}
	if upd.Color != nil {
		event.Color = *upd.Color
	}
	event.UpdatedAt = time.Now()

	if err := s.put(ctx, token, model.GuestEvents, id, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *GuestStore) DeleteEvent(ctx context.Context, token string, id string) error {
	return s.delete(ctx, token, model.GuestEvents, id)
}

func (s *GuestStore) ListEvents(ctx context.Context, token string) ([]*model.Event, error) {
	raw, err := s.client.HGetAll(ctx, guestKey(token, model.GuestEvents)).Result()
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0, len(raw))
	for _, data := range raw {
		var event model.Event
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})
	return events, nil
}

// Fetch returns everything the guest session holds, ready for a merge.
func (s *GuestStore) Fetch(ctx context.Context, token string) (*model.GuestData, error) {
	notes, err := s.ListNotes(ctx, token)
	if err != nil {
		return nil, err
	}
	tasks, err := s.ListTasks(ctx, token)
	if err != nil {
		return nil, err
	}
	ideas, err := s.ListIdeas(ctx, token)
	if err != nil {
		return nil, err
	}
	events, err := s.ListEvents(ctx, token)
	if err != nil {
		return nil, err
	}

	return &model.GuestData{
		Notes:  notes,
		Tasks:  tasks,
		Ideas:  ideas,
		Events: events,
	}, nil
}

// ClearCollection drops one collection of the guest session.
func (s *GuestStore) ClearCollection(ctx context.Context, token string, kind model.GuestCollection) error {
	return s.client.Del(ctx, guestKey(token, kind)).Err()
}

// Clear drops all four collections of the guest session.
func (s *GuestStore) Clear(ctx context.Context, token string) error {
	keys := make([]string, 0, len(model.GuestCollections))
	for _, kind := range model.GuestCollections {
		keys = append(keys, guestKey(token, kind))
	}
	return s.client.Del(ctx, keys...).Err()
}

// sortNotes orders pinned notes first, then by most recent update.
func sortNotes(notes []*model.Note) {
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

// sortTasks orders incomplete tasks first, then by due date with undated
// tasks last, then by creation recency.
func sortTasks(tasks []*model.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		iDue, jDue := !tasks[i].DueDate.IsZero(), !tasks[j].DueDate.IsZero()
		if iDue && jDue && !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		if iDue != jDue {
			return iDue
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
