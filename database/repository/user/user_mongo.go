package userRepo

import (
	"context"
	"fmt"
	"time"

	"taskturf/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(client *mongo.Client, dbName string) UserRepository {
	coll := client.Database(dbName).Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "available", Value: 1}, {Key: "hourly_rate", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update modifies an existing user document.
func (r *MongoUserRepo) Update(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	user.UpdatedAt = time.Now()
	filter := bson.M{"id": user.ID}
	update := bson.M{"$set": user}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", user.ID)
	}
	return nil
}

// UpdateFields sets only the supplied fields on the user document.
func (r *MongoUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// candidateProjection limits worker reads to the matcher's snapshot fields.
var candidateProjection = bson.M{
	"id":             1,
	"name":           1,
	"skills":         1,
	"available":      1,
	"hourly_rate":    1,
	"rating":         1,
	"completed_jobs": 1,
}

// GetWorker retrieves a worker candidate snapshot by ID.
func (r *MongoUserRepo) GetWorker(id string) (*models.WorkerCandidate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(candidateProjection)
	var cand models.WorkerCandidate
	filter := bson.M{"id": id, "role": models.RoleWorker}
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&cand); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch worker with id %s: %w", id, err)
	}
	return &cand, nil
}

// FindAvailableWorkers returns available workers whose hourly rate is at
// most maxRate and whose skill tags match the service type. Results are
// ordered by rating descending, completed jobs descending, then id
// ascending so repeat queries are reproducible.
func (r *MongoUserRepo) FindAvailableWorkers(serviceType string, maxRate float64) ([]models.WorkerCandidate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"role":        models.RoleWorker,
		"available":   true,
		"hourly_rate": bson.M{"$lte": maxRate},
	}
	opts := options.Find().
		SetProjection(candidateProjection).
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "completed_jobs", Value: -1}, {Key: "id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query available workers: %w", err)
	}
	defer cursor.Close(ctx)

	// Skill matching is substring-based in both directions, which Mongo
	// cannot express in a single query; filter while decoding.
	var workers []models.WorkerCandidate
	for cursor.Next(ctx) {
		var cand models.WorkerCandidate
		if err := cursor.Decode(&cand); err != nil {
			return nil, fmt.Errorf("failed to decode worker: %w", err)
		}
		if models.SkillMatches(cand.Skills, serviceType) {
			workers = append(workers, cand)
		}
	}
	return workers, nil
}

// IncrementWorkerStats atomically bumps the worker's completed-job
// counter and earnings total.
func (r *MongoUserRepo) IncrementWorkerStats(id string, completedDelta int, earningsDelta float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "role": models.RoleWorker}
	update := bson.M{
		"$inc": bson.M{
			"completed_jobs": completedDelta,
			"total_earnings": earningsDelta,
		},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment stats for worker %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker with id %s not found", id)
	}
	return nil
}

// SetAvailability toggles the worker's availability flag.
func (r *MongoUserRepo) SetAvailability(id string, available bool) error {
	return r.UpdateFields(id, map[string]interface{}{"available": available})
}
