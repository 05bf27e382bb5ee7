package updateNoteRepo

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

// MongoUpdateNoteRepo implements UpdateNoteRepository using MongoDB.
type MongoUpdateNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoUpdateNoteRepo creates a new instance of UpdateNoteRepository using MongoDB.
func NewMongoUpdateNoteRepo() UpdateNoteRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("update_notes")
	repo := &MongoUpdateNoteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create update note indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUpdateNoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new update note document.
func (r *MongoUpdateNoteRepo) Create(note *models.UpdateNote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("failed to create update note: %w", err)
	}
	return nil
}

// ListByProject retrieves the active notes for a project, newest first.
func (r *MongoUpdateNoteRepo) ListByProject(projectID string) ([]models.UpdateNote, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"projectId": projectID, "isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list update notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.UpdateNote
	for cursor.Next(ctx) {
		var n models.UpdateNote
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode update note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}
