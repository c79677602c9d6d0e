package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

type fakeGuestSource struct {
	data    *model.GuestData
	cleared map[model.GuestCollection]bool
}

func newFakeGuestSource(data *model.GuestData) *fakeGuestSource {
	return &fakeGuestSource{data: data, cleared: make(map[model.GuestCollection]bool)}
}

func (f *fakeGuestSource) Fetch(ctx context.Context, token string) (*model.GuestData, error) {
	return f.data, nil
}

func (f *fakeGuestSource) ClearCollection(ctx context.Context, token string, kind model.GuestCollection) error {
	f.cleared[kind] = true
	return nil
}

type fakeBulkWriters struct {
	notes   []*model.Note
	tasks   []*model.Task
	ideas   []*model.Idea
	events  []*model.Event
	failOn  map[model.GuestCollection]error
}

func (f *fakeBulkWriters) failure(kind model.GuestCollection) error {
	if f.failOn == nil {
		return nil
	}
	return f.failOn[kind]
}

func (f *fakeBulkWriters) CreateManyNotes(ctx context.Context, notes []*model.Note) error {
	if err := f.failure(model.GuestNotes); err != nil {
		return err
	}
	f.notes = append(f.notes, notes...)
	return nil
}

func (f *fakeBulkWriters) CreateManyTasks(ctx context.Context, tasks []*model.Task) error {
	if err := f.failure(model.GuestTasks); err != nil {
		return err
	}
	f.tasks = append(f.tasks, tasks...)
	return nil
}

func (f *fakeBulkWriters) CreateManyIdeas(ctx context.Context, ideas []*model.Idea) error {
	if err := f.failure(model.GuestIdeas); err != nil {
		return err
	}
	f.ideas = append(f.ideas, ideas...)
	return nil
}

func (f *fakeBulkWriters) CreateManyEvents(ctx context.Context, events []*model.Event) error {
	if err := f.failure(model.GuestEvents); err != nil {
		return err
	}
	f.events = append(f.events, events...)
	return nil
}

func sampleGuestData() *model.GuestData {
	return &model.GuestData{
		Notes: []*model.Note{
			{NoteID: "g-n1", Title: "a", Content: "x"},
			{NoteID: "g-n2", Title: "b", Content: "y", Pinned: true},
			{NoteID: "g-n3", Title: "c", Content: "z"},
		},
		Tasks: []*model.Task{
			{TaskID: "g-t1", Title: "t1"},
			{TaskID: "g-t2", Title: "t2", Completed: true},
		},
		Events: []*model.Event{
			{EventID: "g-e1", Title: "e1"},
		},
	}
}

func TestMergeCommitsAndClears(t *testing.T) {
	guest := newFakeGuestSource(sampleGuestData())
	writers := &fakeBulkWriters{}
	svc := NewSyncService(guest, writers, writers, writers, writers)

	result, err := svc.Merge(context.Background(), "acct-1", "tok")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if result.State != MergeCommitted {
		t.Errorf("State = %s, want committed", result.State)
	}

	if len(writers.notes) != 3 || len(writers.tasks) != 2 || len(writers.ideas) != 0 || len(writers.events) != 1 {
		t.Errorf("persisted counts = %d/%d/%d/%d, want 3/2/0/1",
			len(writers.notes), len(writers.tasks), len(writers.ideas), len(writers.events))
	}

	for _, n := range writers.notes {
		if n.UserID != "acct-1" {
			t.Errorf("note owner = %q, want acct-1", n.UserID)
		}
		if n.NoteID == "g-n1" || n.NoteID == "g-n2" || n.NoteID == "g-n3" {
			t.Errorf("guest identifier %q survived the merge", n.NoteID)
		}
		if n.NoteID == "" {
			t.Error("merged note has no durable identifier")
		}
	}
	for _, task := range writers.tasks {
		if task.UserID != "acct-1" {
			t.Errorf("task owner = %q, want acct-1", task.UserID)
		}
	}
	// Field preservation: the pinned flag and completion state carry over.
	if !writers.notes[1].Pinned {
		t.Error("pinned flag lost in merge")
	}
	if !writers.tasks[1].Completed {
		t.Error("completed flag lost in merge")
	}

	if !guest.cleared[model.GuestNotes] || !guest.cleared[model.GuestTasks] || !guest.cleared[model.GuestEvents] {
		t.Errorf("cleared = %v, want notes, tasks and events cleared", guest.cleared)
	}
}

func TestMergePartialFailureRetainsFailedCollection(t *testing.T) {
	guest := newFakeGuestSource(sampleGuestData())
	writers := &fakeBulkWriters{failOn: map[model.GuestCollection]error{
		model.GuestTasks: errors.New("insert failed"),
	}}
	svc := NewSyncService(guest, writers, writers, writers, writers)

	result, err := svc.Merge(context.Background(), "acct-1", "tok")
	if !errors.Is(err, ErrPartialMerge) {
		t.Fatalf("err = %v, want ErrPartialMerge", err)
	}
	if result.State != MergePartiallyFailed {
		t.Errorf("State = %s, want partially_failed", result.State)
	}

	// Notes committed and were cleared; tasks failed and must be retained.
	if !guest.cleared[model.GuestNotes] {
		t.Error("notes should be cleared after a successful insert")
	}
	if guest.cleared[model.GuestTasks] {
		t.Error("tasks were cleared despite a failed insert")
	}
	if len(writers.tasks) != 0 {
		t.Errorf("tasks persisted = %d, want 0", len(writers.tasks))
	}

	if result.Collections[model.GuestTasks].Error == "" {
		t.Error("failed collection carries no error detail")
	}
	if result.Collections[model.GuestNotes].Count != 3 {
		t.Errorf("notes count = %d, want 3", result.Collections[model.GuestNotes].Count)
	}
}

func TestMergeEmptyGuestData(t *testing.T) {
	guest := newFakeGuestSource(&model.GuestData{})
	writers := &fakeBulkWriters{}
	svc := NewSyncService(guest, writers, writers, writers, writers)

	result, err := svc.Merge(context.Background(), "acct-1", "tok")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if result.State != MergeCommitted {
		t.Errorf("State = %s, want committed", result.State)
	}
	if len(guest.cleared) != 0 {
		t.Errorf("cleared = %v, want nothing touched", guest.cleared)
	}
}

func TestMergeRequiresIdentity(t *testing.T) {
	svc := NewSyncService(newFakeGuestSource(&model.GuestData{}), &fakeBulkWriters{}, &fakeBulkWriters{}, &fakeBulkWriters{}, &fakeBulkWriters{})

	if _, err := svc.Merge(context.Background(), "", "tok"); err == nil {
		t.Error("expected error for missing user ID")
	}
	if _, err := svc.Merge(context.Background(), "acct-1", ""); err == nil {
		t.Error("expected error for missing guest token")
	}
}
