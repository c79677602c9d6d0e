package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

type MergeState string

const (
	MergeIdle            MergeState = "idle"
	MergeMerging         MergeState = "merging"
	MergeCommitted       MergeState = "committed"
	MergePartiallyFailed MergeState = "partially_failed"
)

var ErrPartialMerge = errors.New("some guest collections failed to merge")

// GuestSource is the slice of the guest store the merger needs.
type GuestSource interface {
	Fetch(ctx context.Context, token string) (*model.GuestData, error)
	ClearCollection(ctx context.Context, token string, kind model.GuestCollection) error
}

// Bulk writers for the four durable collections.
type NoteBulkWriter interface {
	CreateManyNotes(ctx context.Context, notes []*model.Note) error
}

type TaskBulkWriter interface {
	CreateManyTasks(ctx context.Context, tasks []*model.Task) error
}

type IdeaBulkWriter interface {
	CreateManyIdeas(ctx context.Context, ideas []*model.Idea) error
}

type EventBulkWriter interface {
	CreateManyEvents(ctx context.Context, events []*model.Event) error
}

type CollectionResult struct {
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

type MergeResult struct {
	State       MergeState                                `json:"state"`
	Collections map[model.GuestCollection]CollectionResult `json:"collections"`
}

func (r *MergeResult) total() int {
	n := 0
	for _, c := range r.Collections {
		n += c.Count
	}
	return n
}

// SyncService migrates a guest session's holdings into durable, account-owned
// storage. The merge is a one-shot state machine per attempt: Idle, Merging,
// then Committed or PartiallyFailed. Each collection that commits is cleared
// from the guest store immediately, so a retry after a partial failure only
// re-sends the collections that failed and never duplicates the ones that
// succeeded. No XP is granted for merged entities.
type SyncService struct {
	Guest  GuestSource
	Notes  NoteBulkWriter
	Tasks  TaskBulkWriter
	Ideas  IdeaBulkWriter
	Events EventBulkWriter
}

func NewSyncService(guest GuestSource, notes NoteBulkWriter, tasks TaskBulkWriter, ideas IdeaBulkWriter, events EventBulkWriter) *SyncService {
	return &SyncService{
		Guest:  guest,
		Notes:  notes,
		Tasks:  tasks,
		Ideas:  ideas,
		Events: events,
	}
}

func (s *SyncService) Merge(ctx context.Context, userID string, token string) (*MergeResult, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if token == "" {
		return nil, errors.New("guest token is required")
	}

	result := &MergeResult{
		State:       MergeIdle,
		Collections: make(map[model.GuestCollection]CollectionResult),
	}

	data, err := s.Guest.Fetch(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest data: %w", err)
	}

	if data.IsEmpty() {
		result.State = MergeCommitted
		utils.TrackSyncOutcome("empty")
		return result, nil
	}

	result.State = MergeMerging

	s.mergeCollection(ctx, result, token, model.GuestNotes, len(data.Notes), func() error {
		return s.Notes.CreateManyNotes(ctx, adoptNotes(userID, data.Notes))
	})
	s.mergeCollection(ctx, result, token, model.GuestTasks, len(data.Tasks), func() error {
		return s.Tasks.CreateManyTasks(ctx, adoptTasks(userID, data.Tasks))
	})
	s.mergeCollection(ctx, result, token, model.GuestIdeas, len(data.Ideas), func() error {
		return s.Ideas.CreateManyIdeas(ctx, adoptIdeas(userID, data.Ideas))
	})
	s.mergeCollection(ctx, result, token, model.GuestEvents, len(data.Events), func() error {
		return s.Events.CreateManyEvents(ctx, adoptEvents(userID, data.Events))
	})

	for _, c := range result.Collections {
		if c.Error != "" {
			result.State = MergePartiallyFailed
			utils.TrackSyncOutcome("partially_failed")
			return result, ErrPartialMerge
		}
	}

	result.State = MergeCommitted
	utils.TrackSyncOutcome("committed")
	log.Printf("Merged %d guest entities into account %s", result.total(), userID)
	return result, nil
}

// mergeCollection runs one collection's bulk insert and, on success, clears
// that collection from the guest store. A failed clear leaves data behind for
// a retry, which would duplicate the collection; that is surfaced as a
// partial failure rather than hidden.
func (s *SyncService) mergeCollection(ctx context.Context, result *MergeResult, token string, kind model.GuestCollection, count int, insert func() error) {
	if count == 0 {
		result.Collections[kind] = CollectionResult{}
		return
	}

	if err := insert(); err != nil {
		utils.TrackError("sync", string(kind)+"_insert_failed")
		result.Collections[kind] = CollectionResult{Error: err.Error()}
		return
	}

	if err := s.Guest.ClearCollection(ctx, token, kind); err != nil {
		utils.TrackError("sync", string(kind)+"_clear_failed")
		result.Collections[kind] = CollectionResult{Count: count, Error: "merged but not cleared: " + err.Error()}
		return
	}

	result.Collections[kind] = CollectionResult{Count: count}
}

// The adopt helpers build fresh durable entities: guest identifiers are
// discarded, new durable ones assigned, and ownership set to the account.
// Creation timestamps carry over; durable insert refreshes nothing.

func adoptNotes(userID string, notes []*model.Note) []*model.Note {
	out := make([]*model.Note, len(notes))
	for i, n := range notes {
		adopted := *n
		adopted.NoteID = uuid.New().String()
		adopted.UserID = userID
		stampAdopted(&adopted.CreatedAt, &adopted.UpdatedAt)
		out[i] = &adopted
	}
	return out
}

func adoptTasks(userID string, tasks []*model.Task) []*model.Task {
	out := make([]*model.Task, len(tasks))
	for i, t := range tasks {
		adopted := *t
		adopted.TaskID = uuid.New().String()
		adopted.UserID = userID
		if adopted.Priority == "" {
			adopted.Priority = model.PriorityMedium
		}
		stampAdopted(&adopted.CreatedAt, &adopted.UpdatedAt)
		out[i] = &adopted
	}
	return out
}

func adoptIdeas(userID string, ideas []*model.Idea) []*model.Idea {
	out := make([]*model.Idea, len(ideas))
	for i, d := range ideas {
		adopted := *d
		adopted.IdeaID = uuid.New().String()
		adopted.UserID = userID
		stampAdopted(&adopted.CreatedAt, &adopted.UpdatedAt)
		out[i] = &adopted
	}
	return out
}

func adoptEvents(userID string, events []*model.Event) []*model.Event {
	out := make([]*model.Event, len(events))
	for i, e := range events {
		adopted := *e
		adopted.EventID = uuid.New().String()
		adopted.UserID = userID
		if adopted.Color == "" {
			adopted.Color = model.DefaultEventColor
		}
		stampAdopted(&adopted.CreatedAt, &adopted.UpdatedAt)
		out[i] = &adopted
	}
	return out
}

func stampAdopted(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
