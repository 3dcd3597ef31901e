package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a service by its unique ID. Returns (nil, nil) when the
// service does not exist.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

// GetSnapshot returns the fields a booking copies at creation time.
func (r *MongoServiceRepo) GetSnapshot(id string) (*models.ServiceSnapshot, error) {
	service, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return &models.ServiceSnapshot{
		Title:    service.Title,
		Price:    service.Price,
		Duration: service.Duration,
	}, nil
}

// GetByBusiness lists a business's services.
func (r *MongoServiceRepo) GetByBusiness(businessID string) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}
