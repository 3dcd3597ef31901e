package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new ClientRepository backed by MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("clients")
	repo := &MongoClientRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create client indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new client document.
func (r *MongoClientRepo) Create(client *models.Client) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its unique ID. Returns (nil, nil) when the
// client does not exist.
func (r *MongoClientRepo) GetByID(id string) (*models.Client, error) {
	return r.getWithProjection(id, nil)
}

func (r *MongoClientRepo) getWithProjection(id string, projection bson.M) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, nil
}

// GetSelectedAddress returns the client's currently-selected address.
// Returns (nil, nil) when the client has no selected address; that is not an
// error, bookings are simply created without a location snapshot.
func (r *MongoClientRepo) GetSelectedAddress(id string) (*models.Address, error) {
	client, err := r.getWithProjection(id, bson.M{"id": 1, "addresses": 1})
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client with id %s not found", id)
	}
	for i := range client.Addresses {
		if client.Addresses[i].Selected {
			return &client.Addresses[i], nil
		}
	}
	return nil, nil
}

// GetTokens returns the client's notification tokens.
func (r *MongoClientRepo) GetTokens(id string) ([]string, error) {
	client, err := r.getWithProjection(id, bson.M{"id": 1, "fcmTokens": 1})
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client with id %s not found", id)
	}
	return client.FCMTokens, nil
}

// AddTokens adds tokens to the set with $addToSet so duplicates collapse.
func (r *MongoClientRepo) AddTokens(id string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"fcmTokens": bson.M{"$each": tokens}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add tokens for client %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client with id %s not found", id)
	}
	return nil
}

// RemoveTokens pulls tokens from the set in one atomic update.
func (r *MongoClientRepo) RemoveTokens(id string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"fcmTokens": bson.M{"$in": tokens}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove tokens for client %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client with id %s not found", id)
	}
	return nil
}
