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

var ErrEventNotFound = errors.New("event not found")

type EventsRepo struct {
	MongoCollection *mongo.Collection
}

func GetEventsRepo(client *mongo.Client) *EventsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("EVENTS_COLLECTION", "events")
	return &EventsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *EventsRepo) CreateEvent(ctx context.Context, event *model.Event) error {
	timer := utils.TrackDBOperation("insert", "events")
	defer timer.ObserveDuration()

	if event.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if event.Color == "" {
		event.Color = model.DefaultEventColor
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, event)
	if err != nil {
		utils.TrackError("database", "event_creation_failed")
		return err
	}
	return nil
}

// CreateManyEvents bulk-inserts events, used by the guest data merge.
func (r *EventsRepo) CreateManyEvents(ctx context.Context, events []*model.Event) error {
	if len(events) == 0 {
		return nil
	}

	timer := utils.TrackDBOperation("insert_many", "events")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(events))
	for i, event := range events {
		docs[i] = event
	}

	_, err := r.MongoCollection.InsertMany(ctx, docs)
	if err != nil {
		utils.TrackError("database", "event_bulk_insert_failed")
		return err
	}
	return nil
}

// GetUserEvents retrieves events for a user sorted by start date. When both
// start and end are non-zero only events starting inside the range return.
func (r *EventsRepo) GetUserEvents(ctx context.Context, userID string, start, end time.Time) ([]*model.Event, error) {
	timer := utils.TrackDBOperation("find", "events")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if !start.IsZero() && !end.IsZero() {
		filter["start_date"] = bson.M{"$gte": start, "$lte": end}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.Event
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventsRepo) GetEvent(ctx context.Context, eventID string, userID string) (*model.Event, error) {
	timer := utils.TrackDBOperation("find", "events")
	defer timer.ObserveDuration()

	var event model.Event
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": eventID, "user_id": userID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventsRepo) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.Event) error {
	timer := utils.TrackDBOperation("update", "events")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     eventID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":       updates.Title,
			"description": updates.Description,
			"start_date":  updates.StartDate,
			"end_date":    updates.EndDate,
			"all_day":     updates.AllDay,
			"color":       updates.Color,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "event_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *EventsRepo) DeleteEvent(ctx context.Context, eventID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "events")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": eventID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

// DeleteUserEvents removes all events for a user, used by account deletion.
func (r *EventsRepo) DeleteUserEvents(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete_many", "events")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
