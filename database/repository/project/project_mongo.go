package projectRepo

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

// MongoProjectRepo implements ProjectRepository using MongoDB.
type MongoProjectRepo struct {
	coll *mongo.Collection
}

// NewMongoProjectRepo creates a new instance of ProjectRepository using MongoDB.
func NewMongoProjectRepo() ProjectRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("projects")
	repo := &MongoProjectRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create project indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProjectRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "supervisor", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new project document.
func (r *MongoProjectRepo) Create(project *models.Project) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update modifies an existing project document.
func (r *MongoProjectRepo) Update(project *models.Project) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	project.UpdatedAt = time.Now()
	filter := bson.M{"id": project.ID, "isActive": true}
	update := bson.M{"$set": project}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update project with id %s: %w", project.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("project with id %s not found", project.ID)
	}
	return nil
}

// SoftDelete marks a project inactive.
func (r *MongoProjectRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "isActive": true}, update)
	if err != nil {
		return fmt.Errorf("failed to delete project with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("project with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an active project by its unique ID.
func (r *MongoProjectRepo) GetByID(id string) (*models.Project, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var project models.Project
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch project with id %s: %w", id, err)
	}
	return &project, nil
}

// ListBySupervisor retrieves the supervisor's active projects, newest first.
func (r *MongoProjectRepo) ListBySupervisor(supervisorID string) ([]models.Project, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"supervisor": supervisorID, "isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	for cursor.Next(ctx) {
		var p models.Project
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}
