package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when the
// booking does not exist.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByClient retrieves all bookings made by a client, newest first.
func (r *MongoBookingRepo) GetByClient(clientID string) ([]models.Booking, error) {
	return r.findAll(bson.M{"clientId": clientID})
}

// GetByBusiness retrieves all bookings placed with a business, newest first.
func (r *MongoBookingRepo) GetByBusiness(businessID string) ([]models.Booking, error) {
	return r.findAll(bson.M{"businessId": businessID})
}

func (r *MongoBookingRepo) findAll(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
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

// ApplyTransition runs the lifecycle change as a single conditional
// FindOneAndUpdate so two racing transitions cannot both win: the filter
// matches only while the current status is still in allowed.
func (r *MongoBookingRepo) ApplyTransition(id string, allowed []models.BookingStatus, t Transition) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if len(allowed) > 0 {
		filter["status"] = bson.M{"$in": allowed}
	}

	set := bson.M{"updatedAt": time.Now()}
	if t.Status != nil {
		set["status"] = *t.Status
	}
	if t.RejectionReason != nil {
		set["rejectionReason"] = *t.RejectionReason
	}
	if t.Tracking != nil {
		set["tracking"] = *t.Tracking
	}
	if t.TrackingMessage != nil {
		set["trackingMessage"] = *t.TrackingMessage
	}

	update := bson.M{"$set": set}
	if t.ClearRejectionReason {
		update["$unset"] = bson.M{"rejectionReason": ""}
		delete(set, "rejectionReason")
	}
	if t.AppendEntry != nil {
		update["$push"] = bson.M{"trackingHistory": *t.AppendEntry}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &updated, nil
}
