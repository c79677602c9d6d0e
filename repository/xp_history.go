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

// XPHistoryRepo is append-only: entries are inserted and listed, never
// updated or deleted.
type XPHistoryRepo struct {
	MongoCollection *mongo.Collection
}

func GetXPHistoryRepo(client *mongo.Client) *XPHistoryRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("XP_HISTORY_COLLECTION", "xp_history")
	return &XPHistoryRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateEntry appends one ledger entry.
func (r *XPHistoryRepo) CreateEntry(ctx context.Context, entry *model.XPHistory) error {
	timer := utils.TrackDBOperation("insert", "xp_history")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "ledger_append_failed")
		return err
	}
	return nil
}

// GetUserHistory retrieves a user's ledger entries, newest first.
func (r *XPHistoryRepo) GetUserHistory(ctx context.Context, userID string, limit int64) ([]*model.XPHistory, error) {
	timer := utils.TrackDBOperation("find", "xp_history")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.XPHistory
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteUserHistory removes a user's ledger. Only account deletion may call
// this; the ledger is otherwise immutable.
func (r *XPHistoryRepo) DeleteUserHistory(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete_many", "xp_history")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
