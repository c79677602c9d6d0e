package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

type fakeNoteStore struct {
	notes map[string]*model.Note
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: make(map[string]*model.Note)}
}

func (f *fakeNoteStore) CreateNote(ctx context.Context, note *model.Note) error {
	f.notes[note.NoteID] = note
	return nil
}

func (f *fakeNoteStore) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	var out []*model.Note
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) GetNote(ctx context.Context, noteID string, userID string) (*model.Note, error) {
	note, ok := f.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, errors.New("note not found")
	}
	return note, nil
}

func (f *fakeNoteStore) UpdateNote(ctx context.Context, noteID string, userID string, updates *model.Note) error {
	note, err := f.GetNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	note.Title = updates.Title
	note.Content = updates.Content
	note.Tags = updates.Tags
	note.Pinned = updates.Pinned
	return nil
}

func (f *fakeNoteStore) DeleteNote(ctx context.Context, noteID string, userID string) error {
	if _, err := f.GetNote(ctx, noteID, userID); err != nil {
		return err
	}
	delete(f.notes, noteID)
	return nil
}

type failingRewarder struct {
	err error
}

func (r *failingRewarder) Award(ctx context.Context, userID string, action model.ActionKind) (*RewardResult, error) {
	return nil, r.err
}

func TestCreateNoteGrantsReward(t *testing.T) {
	store := newFakeNoteStore()
	rewards := &recordingRewarder{}
	svc := NewNotesService(store, rewards)

	reward, err := svc.CreateNote(context.Background(), &model.Note{
		UserID:  "u1",
		Title:   "groceries",
		Content: "milk",
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if reward == nil {
		t.Fatal("expected a reward for note creation")
	}
	if len(rewards.awards) != 1 || rewards.awards[0] != model.ActionCreateNote {
		t.Errorf("awards = %v, want [create_note]", rewards.awards)
	}
}

func TestCreateNoteRewardFailureIsNonFatal(t *testing.T) {
	store := newFakeNoteStore()
	svc := NewNotesService(store, &failingRewarder{err: errors.New("xp increment failed")})

	reward, err := svc.CreateNote(context.Background(), &model.Note{
		UserID:  "u1",
		Title:   "groceries",
		Content: "milk",
	})
	if err != nil {
		t.Fatalf("CreateNote returned error despite persisted note: %v", err)
	}
	if reward != nil {
		t.Errorf("reward = %+v, want nil when the grant fails", reward)
	}
	if len(store.notes) != 1 {
		t.Errorf("stored notes = %d, want 1", len(store.notes))
	}
}

func TestCreateNoteValidation(t *testing.T) {
	svc := NewNotesService(newFakeNoteStore(), &recordingRewarder{})
	ctx := context.Background()

	t.Run("MissingContent", func(t *testing.T) {
		if _, err := svc.CreateNote(ctx, &model.Note{UserID: "u1", Title: "t"}); err == nil {
			t.Error("expected error for missing content")
		}
	})

	t.Run("TooManyTags", func(t *testing.T) {
		note := &model.Note{
			UserID: "u1", Title: "t", Content: "c",
			Tags: []string{"a", "b", "c", "d", "e", "f"},
		}
		if _, err := svc.CreateNote(ctx, note); err == nil {
			t.Error("expected error for more than 5 tags")
		}
	})
}
