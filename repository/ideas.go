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

var ErrIdeaNotFound = errors.New("idea not found")

type IdeasRepo struct {
	MongoCollection *mongo.Collection
}

func GetIdeasRepo(client *mongo.Client) *IdeasRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("IDEAS_COLLECTION", "ideas")
	return &IdeasRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *IdeasRepo) CreateIdea(ctx context.Context, idea *model.Idea) error {
	timer := utils.TrackDBOperation("insert", "ideas")
	defer timer.ObserveDuration()

	if idea.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	idea.CreatedAt = time.Now()
	idea.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, idea)
	if err != nil {
		utils.TrackError("database", "idea_creation_failed")
		return err
	}
	return nil
}

// CreateManyIdeas bulk-inserts ideas, used by the guest data merge.
func (r *IdeasRepo) CreateManyIdeas(ctx context.Context, ideas []*model.Idea) error {
	if len(ideas) == 0 {
		return nil
	}

	timer := utils.TrackDBOperation("insert_many", "ideas")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(ideas))
	for i, idea := range ideas {
		docs[i] = idea
	}

	_, err := r.MongoCollection.InsertMany(ctx, docs)
	if err != nil {
		utils.TrackError("database", "idea_bulk_insert_failed")
		return err
	}
	return nil
}

// GetUserIdeas retrieves all ideas for a user, most recent first
func (r *IdeasRepo) GetUserIdeas(ctx context.Context, userID string) ([]*model.Idea, error) {
	timer := utils.TrackDBOperation("find", "ideas")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ideas []*model.Idea
	if err = cursor.All(ctx, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *IdeasRepo) GetIdea(ctx context.Context, ideaID string, userID string) (*model.Idea, error) {
	timer := utils.TrackDBOperation("find", "ideas")
	defer timer.ObserveDuration()

	var idea model.Idea
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": ideaID, "user_id": userID}).Decode(&idea)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}
	return &idea, nil
}

func (r *IdeasRepo) UpdateIdea(ctx context.Context, ideaID string, userID string, updates *model.Idea) error {
	timer := utils.TrackDBOperation("update", "ideas")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     ideaID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":      updates.Title,
			"content":    updates.Content,
			"tags":       updates.Tags,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "idea_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

func (r *IdeasRepo) DeleteIdea(ctx context.Context, ideaID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "ideas")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": ideaID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

// DeleteUserIdeas removes all ideas for a user, used by account deletion.
func (r *IdeasRepo) DeleteUserIdeas(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete_many", "ideas")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
