package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

const (
	maxTags      = 5
	maxTagLength = 20
)

// Rewarder is implemented by the rewards service; entity usecases dispatch
// through it when an action earns XP.
type Rewarder interface {
	Award(ctx context.Context, userID string, action model.ActionKind) (*RewardResult, error)
}

// NoteStore is the slice of the notes repository this service needs.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID string, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID string, userID string, updates *model.Note) error
	DeleteNote(ctx context.Context, noteID string, userID string) error
}

type NotesService struct {
	NotesRepo NoteStore
	Rewards   Rewarder
}

func NewNotesService(notesRepo NoteStore, rewards Rewarder) *NotesService {
	return &NotesService{NotesRepo: notesRepo, Rewards: rewards}
}

// CreateNote persists a note and then grants the create_note reward. The
// reward runs only after the note is durable; a reward failure leaves the
// note in place and is logged as a warning, never returned as an error.
func (svc *NotesService) CreateNote(ctx context.Context, note *model.Note) (*RewardResult, error) {
	if note.UserID == "" {
		return nil, errors.New("user ID is required")
	}
	if note.Title == "" || note.Content == "" {
		return nil, errors.New("title and content are required")
	}

	validTags, err := validateTags(note.Tags)
	if err != nil {
		return nil, err
	}
	note.Tags = validTags

	if note.NoteID == "" {
		note.NoteID = uuid.New().String()
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	reward, err := svc.Rewards.Award(ctx, note.UserID, model.ActionCreateNote)
	if err != nil {
		// The note already persisted; losing the reward is a warning, not a
		// failed create.
		log.Printf("Warning: creation reward failed for note %s user %s: %v", note.NoteID, note.UserID, err)
		utils.TrackError("rewards", "note_creation_award_failed")
		return nil, nil
	}
	return reward, nil
}

func (svc *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

func (svc *NotesService) UpdateNote(ctx context.Context, noteID string, userID string, updates *model.Note) (*model.Note, error) {
	existing, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
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

	if err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, updates); err != nil {
		return nil, err
	}
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID string, userID string) error {
	return svc.NotesRepo.DeleteNote(ctx, noteID, userID)
}

func validateTags(tags []string) ([]string, error) {
	if len(tags) > maxTags {
		return nil, errors.New("cannot exceed 5 tags")
	}

	valid := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if len(tag) > maxTagLength {
			return nil, errors.New("tag cannot exceed 20 characters")
		}
		valid = append(valid, tag)
	}
	return valid, nil
}
