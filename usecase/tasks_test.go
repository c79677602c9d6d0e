package usecase

import (
	"context"
	"testing"

	"main/model"
)

type fakeTaskStore struct {
	tasks map[string]*model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]*model.Task)}
}

func (f *fakeTaskStore) CreateTask(ctx context.Context, task *model.Task) error {
	copied := *task
	f.tasks[task.TaskID] = &copied
	return nil
}

func (f *fakeTaskStore) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	var out []*model.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) GetTask(ctx context.Context, taskID string, userID string) (*model.Task, error) {
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, errTaskMissing
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTaskStore) UpdateTask(ctx context.Context, taskID string, userID string, updates *model.Task) error {
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != userID {
		return errTaskMissing
	}
	t.Title = updates.Title
	t.Description = updates.Description
	t.Completed = updates.Completed
	t.Priority = updates.Priority
	t.DueDate = updates.DueDate
	return nil
}

func (f *fakeTaskStore) DeleteTask(ctx context.Context, taskID string, userID string) error {
	delete(f.tasks, taskID)
	return nil
}

var errTaskMissing = taskMissingError{}

type taskMissingError struct{}

func (taskMissingError) Error() string { return "task not found" }

type recordingRewarder struct {
	awards []model.ActionKind
}

func (r *recordingRewarder) Award(ctx context.Context, userID string, action model.ActionKind) (*RewardResult, error) {
	r.awards = append(r.awards, action)
	return &RewardResult{XPGained: 5, NewXP: 5, NewLevel: 1}, nil
}

func TestTaskCompletionTogglesXPOnce(t *testing.T) {
	store := newFakeTaskStore()
	rewards := &recordingRewarder{}
	svc := NewTasksService(store, rewards)
	ctx := context.Background()

	task := &model.Task{TaskID: "t1", UserID: "u1", Title: "write report"}
	if err := svc.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if len(rewards.awards) != 0 {
		t.Fatalf("creation awarded XP: %v", rewards.awards)
	}

	t.Run("IncompleteToComplete", func(t *testing.T) {
		_, reward, err := svc.UpdateTask(ctx, "t1", "u1", &model.Task{Title: "write report", Completed: true})
		if err != nil {
			t.Fatalf("UpdateTask: %v", err)
		}
		if reward == nil {
			t.Fatal("expected a completion reward")
		}
		if len(rewards.awards) != 1 || rewards.awards[0] != model.ActionCompleteTask {
			t.Fatalf("awards = %v, want [complete_task]", rewards.awards)
		}
	})

	t.Run("CompleteToComplete", func(t *testing.T) {
		_, reward, err := svc.UpdateTask(ctx, "t1", "u1", &model.Task{Title: "write report", Completed: true})
		if err != nil {
			t.Fatalf("UpdateTask: %v", err)
		}
		if reward != nil {
			t.Fatal("re-completing must not grant XP again")
		}
		if len(rewards.awards) != 1 {
			t.Fatalf("awards = %v, want exactly one", rewards.awards)
		}
	})

	t.Run("CompleteToIncomplete", func(t *testing.T) {
		_, reward, err := svc.UpdateTask(ctx, "t1", "u1", &model.Task{Title: "write report", Completed: false})
		if err != nil {
			t.Fatalf("UpdateTask: %v", err)
		}
		if reward != nil {
			t.Fatal("un-completing must not move XP")
		}
	})

	t.Run("RecompletionGrantsAgain", func(t *testing.T) {
		_, reward, err := svc.UpdateTask(ctx, "t1", "u1", &model.Task{Title: "write report", Completed: true})
		if err != nil {
			t.Fatalf("UpdateTask: %v", err)
		}
		if reward == nil {
			t.Fatal("the incomplete-to-complete edge should grant again")
		}
		if len(rewards.awards) != 2 {
			t.Fatalf("awards = %v, want two grants", rewards.awards)
		}
	})
}

func TestTaskValidation(t *testing.T) {
	svc := NewTasksService(newFakeTaskStore(), &recordingRewarder{})
	ctx := context.Background()

	if err := svc.CreateTask(ctx, &model.Task{UserID: "u1"}); err == nil {
		t.Error("expected error for missing title")
	}
	if err := svc.CreateTask(ctx, &model.Task{Title: "x"}); err == nil {
		t.Error("expected error for missing user ID")
	}
	if err := svc.CreateTask(ctx, &model.Task{UserID: "u1", Title: "x", Priority: "urgent"}); err == nil {
		t.Error("expected error for invalid priority")
	}
}

func TestTaskDefaultPriority(t *testing.T) {
	store := newFakeTaskStore()
	svc := NewTasksService(store, &recordingRewarder{})

	task := &model.Task{TaskID: "t1", UserID: "u1", Title: "x"}
	if err := svc.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if store.tasks["t1"].Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium", store.tasks["t1"].Priority)
	}
}
