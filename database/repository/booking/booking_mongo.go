package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"taskturf/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(client *mongo.Client, dbName string) BookingRepository {
	coll := client.Database(dbName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "worker_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// ListByCustomer returns a customer's bookings, newest first, optionally
// filtered by status.
func (r *MongoBookingRepo) ListByCustomer(customerID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"customer_id": customerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ListByWorker returns a worker's bookings, newest first, optionally
// filtered by status.
func (r *MongoBookingRepo) ListByWorker(workerID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"worker_id": workerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ApplyTransition performs the lifecycle write as a single conditional
// FindOneAndUpdate keyed on id plus the expected current state, so that
// concurrent callers race on the document itself: exactly one matches.
func (r *MongoBookingRepo) ApplyTransition(id string, expect TransitionExpect, patch TransitionPatch) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	switch len(expect.Statuses) {
	case 0:
		return nil, fmt.Errorf("transition expectation must name at least one status")
	case 1:
		filter["status"] = expect.Statuses[0]
	default:
		filter["status"] = bson.M{"$in": expect.Statuses}
	}
	if expect.WorkerID != "" {
		filter["worker_id"] = expect.WorkerID
	}
	if expect.CustomerID != "" {
		filter["customer_id"] = expect.CustomerID
	}

	now := time.Now()
	set := bson.M{
		"status":     patch.Status,
		"updated_at": now,
	}
	if patch.Stamp != "" {
		set[patch.Stamp] = now
	}
	if patch.SetWorkerID != "" {
		set["worker_id"] = patch.SetWorkerID
	}
	if patch.PaymentStatus != "" {
		set["payment_status"] = patch.PaymentStatus
	}
	if patch.EstimatedPrice != nil {
		set["estimated_price"] = *patch.EstimatedPrice
	}
	if patch.FinalAmount != nil {
		set["final_amount"] = *patch.FinalAmount
	}
	if patch.WorkerNote != "" {
		set["worker_note"] = patch.WorkerNote
	}
	if patch.CancelReason != "" {
		set["cancel_reason"] = patch.CancelReason
	}

	update := bson.M{"$set": set}
	if patch.ClearWorker {
		update["$unset"] = bson.M{"worker_id": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to transition booking %s: %w", id, err)
	}
	return &updated, nil
}

// UpdateDetails patches editable fields conditional on the booking still
// being editable, in one write.
func (r *MongoBookingRepo) UpdateDetails(id, customerID string, editable []models.BookingStatus, patch models.BookingDetailsPatch, finalAmount *float64) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":          id,
		"customer_id": customerID,
		"status":      bson.M{"$in": editable},
	}

	set := bson.M{"updated_at": time.Now()}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.ScheduledDate != nil {
		set["scheduled_date"] = *patch.ScheduledDate
	}
	if patch.Urgency != nil {
		set["urgency"] = *patch.Urgency
	}
	if finalAmount != nil {
		set["final_amount"] = *finalAmount
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &updated, nil
}

// SetPaymentStatus flips payment status conditional on its current value.
func (r *MongoBookingRepo) SetPaymentStatus(id, from, to string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "payment_status": from}
	update := bson.M{"$set": bson.M{"payment_status": to, "updated_at": time.Now()}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to set payment status on booking %s: %w", id, err)
	}
	return &updated, nil
}

// AggregateByStatus groups an actor's bookings by status. Counters are
// always computed fresh from the ledger; there is no materialized view.
func (r *MongoBookingRepo) AggregateByStatus(field, actorID string) ([]models.StatusCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: field, Value: actorID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "amount", Value: bson.D{{Key: "$sum", Value: "$final_amount"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings for %s=%s: %w", field, actorID, err)
	}
	defer cursor.Close(ctx)

	var counts []models.StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation: %w", err)
	}
	return counts, nil
}
