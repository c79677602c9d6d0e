package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrTaskNotFound = errors.New("task not found")

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

func GetTasksRepo(client *mongo.Client) *TasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("TASKS_COLLECTION", "tasks")
	return &TasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateTask adds a new task for the user
func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, task)
	if err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

// CreateManyTasks bulk-inserts tasks, used by the guest data merge.
func (r *TasksRepo) CreateManyTasks(ctx context.Context, tasks []*model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	timer := utils.TrackDBOperation("insert_many", "tasks")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(tasks))
	for i, task := range tasks {
		docs[i] = task
	}

	_, err := r.MongoCollection.InsertMany(ctx, docs)
	if err != nil {
		utils.TrackError("database", "task_bulk_insert_failed")
		return err
	}
	return nil
}

// GetUserTasks retrieves all tasks for a user, incomplete first, then by due
// date, then by creation recency.
func (r *TasksRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "completed", Value: 1},
		{Key: "due_date", Value: 1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves a specific task owned by the user
func (r *TasksRepo) GetTask(ctx context.Context, taskID string, userID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": taskID, "user_id": userID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates a specific task
func (r *TasksRepo) UpdateTask(ctx context.Context, taskID string, userID string, updates *model.Task) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     taskID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":       updates.Title,
			"description": updates.Description,
			"completed":   updates.Completed,
			"priority":    updates.Priority,
			"due_date":    updates.DueDate,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a specific task
func (r *TasksRepo) DeleteTask(ctx context.Context, taskID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": taskID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteUserTasks removes all tasks for a user, used by account deletion.
func (r *TasksRepo) DeleteUserTasks(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete_many", "tasks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
