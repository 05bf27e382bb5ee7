package activityRepo

import (
	"context"
	"fmt"
	"time"

	"obratrack/database"
	"obratrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo creates a new instance of ActivityRepository using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("activities")
	repo := &MongoActivityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create activity indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoActivityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new activity document.
func (r *MongoActivityRepo) Create(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Update modifies an existing activity document.
func (r *MongoActivityRepo) Update(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	activity.UpdatedAt = time.Now()
	filter := bson.M{"id": activity.ID, "isActive": true}
	update := bson.M{"$set": activity}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update activity with id %s: %w", activity.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("activity with id %s not found", activity.ID)
	}
	return nil
}

// SoftDelete marks an activity inactive.
func (r *MongoActivityRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "isActive": true}, update)
	if err != nil {
		return fmt.Errorf("failed to delete activity with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("activity with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an active activity by its unique ID.
func (r *MongoActivityRepo) GetByID(id string) (*models.Activity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var activity models.Activity
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch activity with id %s: %w", id, err)
	}
	return &activity, nil
}

// List retrieves active activities matching the filter, newest first.
func (r *MongoActivityRepo) List(filter ActivityFilter) ([]models.Activity, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"isActive": true}
	if filter.ProjectID != "" {
		query["projectId"] = filter.ProjectID
	}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	for cursor.Next(ctx) {
		var a models.Activity
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}
