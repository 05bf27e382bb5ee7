package tvSessionRepo

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

// MongoTVSessionRepo implements TVSessionRepository using MongoDB.
type MongoTVSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoTVSessionRepo creates a new instance of TVSessionRepository using MongoDB.
func NewMongoTVSessionRepo() TVSessionRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("tv_sessions")
	repo := &MongoTVSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create tv session indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique token index and the TTL index that lets
// Mongo physically remove records once expiresAt elapses. The TTL sweep is
// reclamation only; read correctness never depends on it because every query
// filters on expiresAt itself.
func (r *MongoTVSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// activeFilter matches sessions that are still visible to callers.
func activeFilter(token string, now time.Time) bson.M {
	return bson.M{
		"token":     token,
		"active":    true,
		"expiresAt": bson.M{"$gt": now},
	}
}

// Create inserts a new pending session document.
func (r *MongoTVSessionRepo) Create(sess *models.TVSession) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, sess); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateToken
		}
		return fmt.Errorf("failed to create tv session: %w", err)
	}
	return nil
}

// FindActiveByToken retrieves a session by token, applying lazy expiry.
func (r *MongoTVSessionRepo) FindActiveByToken(token string) (*models.TVSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sess models.TVSession
	if err := r.coll.FindOne(ctx, activeFilter(token, time.Now())).Decode(&sess); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tv session %s: %w", token, err)
	}
	return &sess, nil
}

// MarkConnected performs the pending -> connected transition as a single
// conditional update. The filter carries the whole guard (pending state, not
// expired, still active), so two concurrent connects on the same token can
// never both match.
func (r *MongoTVSessionRepo) MarkConnected(token, userID string) (*models.TVSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := activeFilter(token, now)
	filter["state"] = models.TVSessionPending

	update := bson.M{"$set": bson.M{
		"state":       models.TVSessionConnected,
		"userId":      userID,
		"connectedAt": now,
		"updatedAt":   now,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var sess models.TVSession
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&sess)
	if err == nil {
		return &sess, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to connect tv session %s: %w", token, err)
	}

	// The guard did not match. Look the session up once more, only to decide
	// which error to report; the outcome of the race was already settled by
	// the conditional update above.
	cur, lookupErr := r.FindActiveByToken(token)
	if lookupErr != nil {
		return nil, ErrNotFound
	}
	if cur.State == models.TVSessionConnected {
		return nil, ErrAlreadyConnected
	}
	return nil, ErrNotFound
}

// MarkClosed performs the connected -> closed transition on behalf of the
// bound user.
func (r *MongoTVSessionRepo) MarkClosed(token, userID string) error {
	cur, err := r.FindActiveByToken(token)
	if err != nil {
		return err
	}
	if cur.State != models.TVSessionConnected {
		return ErrNotFound
	}
	if cur.UserID != userID {
		return ErrForbidden
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := activeFilter(token, now)
	filter["userId"] = userID

	update := bson.M{"$set": bson.M{
		"state":     models.TVSessionClosed,
		"active":    false,
		"updatedAt": now,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to close tv session %s: %w", token, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkExpired closes a session at its deadline regardless of state.
func (r *MongoTVSessionRepo) MarkExpired(token string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"state":     models.TVSessionClosed,
		"active":    false,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"token": token, "active": true}, update)
	if err != nil {
		return false, fmt.Errorf("failed to expire tv session %s: %w", token, err)
	}
	return result.ModifiedCount > 0, nil
}
