package usecase

import (
	"context"
	"errors"
	"log"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// TaskStore is the slice of the tasks repository this service needs.
type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error)
	GetTask(ctx context.Context, taskID string, userID string) (*model.Task, error)
	UpdateTask(ctx context.Context, taskID string, userID string, updates *model.Task) error
	DeleteTask(ctx context.Context, taskID string, userID string) error
}

type TasksService struct {
	TasksRepo TaskStore
	Rewards   Rewarder
}

func NewTasksService(tasksRepo TaskStore, rewards Rewarder) *TasksService {
	return &TasksService{TasksRepo: tasksRepo, Rewards: rewards}
}

func (svc *TasksService) CreateTask(ctx context.Context, task *model.Task) error {
	if task.UserID == "" {
		return errors.New("user ID is required")
	}
	if task.Title == "" {
		return errors.New("title is required")
	}
	if err := validatePriority(task.Priority); err != nil {
		return err
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}

	// Task creation itself earns nothing; only completion does.
	return svc.TasksRepo.CreateTask(ctx, task)
}

func (svc *TasksService) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return svc.TasksRepo.GetUserTasks(ctx, userID)
}

// UpdateTask applies the update and grants the completion reward only on the
// false-to-true transition of the completed flag. Re-completing an already
// complete task, or un-completing one, never moves XP in either direction.
func (svc *TasksService) UpdateTask(ctx context.Context, taskID string, userID string, updates *model.Task) (*model.Task, *RewardResult, error) {
	existing, err := svc.TasksRepo.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, nil, err
	}

	if updates.Title == "" {
		updates.Title = existing.Title
	}
	if updates.Priority == "" {
		updates.Priority = existing.Priority
	}
	if err := validatePriority(updates.Priority); err != nil {
		return nil, nil, err
	}

	justCompleted := !existing.Completed && updates.Completed

	if err := svc.TasksRepo.UpdateTask(ctx, taskID, userID, updates); err != nil {
		return nil, nil, err
	}

	var reward *RewardResult
	if justCompleted {
		reward, err = svc.Rewards.Award(ctx, userID, model.ActionCompleteTask)
		if err != nil {
			// The completion already persisted; losing the reward is a
			// warning, not a failed update.
			log.Printf("Warning: completion reward failed for task %s user %s: %v", taskID, userID, err)
			utils.TrackError("rewards", "task_completion_award_failed")
			reward = nil
		}
	}

	task, err := svc.TasksRepo.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, reward, err
	}
	return task, reward, nil
}

func (svc *TasksService) DeleteTask(ctx context.Context, taskID string, userID string) error {
	return svc.TasksRepo.DeleteTask(ctx, taskID, userID)
}

func validatePriority(priority model.Priority) error {
	switch priority {
	case "", model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return nil
	default:
		return errors.New("invalid priority level")
	}
}
