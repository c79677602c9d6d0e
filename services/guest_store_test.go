package services

import (
	"testing"
	"time"

	"main/model"
)

func TestSortNotesPinnedFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	notes := []*model.Note{
		{NoteID: "old", UpdatedAt: base},
		{NoteID: "pinned-old", Pinned: true, UpdatedAt: base.Add(-time.Hour)},
		{NoteID: "new", UpdatedAt: base.Add(2 * time.Hour)},
		{NoteID: "pinned-new", Pinned: true, UpdatedAt: base.Add(time.Hour)},
	}

	sortNotes(notes)

	want := []string{"pinned-new", "pinned-old", "new", "old"}
	for i, id := range want {
		if notes[i].NoteID != id {
			t.Fatalf("position %d: got %q, want %q", i, notes[i].NoteID, id)
		}
	}
}

func TestSortTasksOrdering(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tasks := []*model.Task{
		{TaskID: "done", Completed: true, CreatedAt: base.Add(3 * time.Hour)},
		{TaskID: "due-late", DueDate: base.AddDate(0, 0, 5), CreatedAt: base},
		{TaskID: "no-due-new", CreatedAt: base.Add(2 * time.Hour)},
		{TaskID: "due-soon", DueDate: base.AddDate(0, 0, 1), CreatedAt: base},
		{TaskID: "no-due-old", CreatedAt: base.Add(time.Hour)},
	}

	sortTasks(tasks)

	want := []string{"due-soon", "due-late", "no-due-new", "no-due-old", "done"}
	for i, id := range want {
		if tasks[i].TaskID != id {
			t.Fatalf("position %d: got %q, want %q", i, tasks[i].TaskID, id)
		}
	}
}

func TestGuestKeyScheme(t *testing.T) {
	token := "abc-123"
	if got := guestKey(token, model.GuestNotes); got != "guest:abc-123:notes" {
		t.Errorf("guestKey = %q", got)
	}
	if got := guestKey(token, model.GuestEvents); got != "guest:abc-123:events" {
		t.Errorf("guestKey = %q", got)
	}
}
