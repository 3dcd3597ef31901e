package businessRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookify/database"
	"bookify/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// scheduleCacheTTL bounds how stale a cached weekly schedule may get.
const scheduleCacheTTL = 10 * time.Minute

// MongoBusinessRepo implements BusinessRepository using MongoDB, with an
// optional Redis cache in front of schedule reads (they run on every booking
// creation).
type MongoBusinessRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoBusinessRepo creates a new BusinessRepository backed by MongoDB.
// cache may be nil to disable schedule caching.
func NewMongoBusinessRepo(cache *redis.Client) BusinessRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll, cache: cache}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create business indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) ensureIndexes() error {
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

// Create inserts a new business document. A configured schedule must be
// complete; half-configured days are rejected here rather than denying
// bookings one request at a time.
func (r *MongoBusinessRepo) Create(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if business.Schedule != nil {
		if err := business.Schedule.Validate(); err != nil {
			return fmt.Errorf("invalid schedule: %w", err)
		}
	}

	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// GetByID retrieves a business by its unique ID. Returns (nil, nil) when the
// business does not exist.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	return r.getWithProjection(id, nil)
}

func (r *MongoBusinessRepo) getWithProjection(id string, projection bson.M) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &business, nil
}

func scheduleCacheKey(id string) string {
	return "business:schedule:" + id
}

// GetSchedule returns the weekly schedule, serving from the Redis cache when
// possible. A business without a schedule yields (nil, nil).
func (r *MongoBusinessRepo) GetSchedule(id string) (*models.WeeklySchedule, error) {
	if r.cache != nil {
		ctx, cancel := newContext(2 * time.Second)
		data, err := r.cache.Get(ctx, scheduleCacheKey(id)).Result()
		cancel()
		if err == nil {
			var schedule models.WeeklySchedule
			if err := json.Unmarshal([]byte(data), &schedule); err == nil {
				return &schedule, nil
			}
		}
	}

	business, err := r.getWithProjection(id, bson.M{"id": 1, "schedule": 1})
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("business with id %s not found", id)
	}
	if business.Schedule == nil {
		return nil, nil
	}

	if r.cache != nil {
		if data, err := json.Marshal(business.Schedule); err == nil {
			ctx, cancel := newContext(2 * time.Second)
			r.cache.Set(ctx, scheduleCacheKey(id), data, scheduleCacheTTL)
			cancel()
		}
	}
	return business.Schedule, nil
}

// UpdateSchedule replaces the stored schedule and drops the cached copy.
func (r *MongoBusinessRepo) UpdateSchedule(id string, schedule *models.WeeklySchedule) error {
	if schedule != nil {
		if err := schedule.Validate(); err != nil {
			return fmt.Errorf("invalid schedule: %w", err)
		}
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"schedule": schedule, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule for business %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}

	if r.cache != nil {
		cctx, ccancel := newContext(2 * time.Second)
		r.cache.Del(cctx, scheduleCacheKey(id))
		ccancel()
	}
	return nil
}

// GetTokens returns the business's notification tokens.
func (r *MongoBusinessRepo) GetTokens(id string) ([]string, error) {
	business, err := r.getWithProjection(id, bson.M{"id": 1, "fcmTokens": 1})
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("business with id %s not found", id)
	}
	return business.FCMTokens, nil
}

// AddTokens adds tokens to the set with $addToSet so duplicates collapse.
func (r *MongoBusinessRepo) AddTokens(id string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"fcmTokens": bson.M{"$each": tokens}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add tokens for business %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// RemoveTokens pulls tokens from the set in one atomic update. $pull is
// commutative, so concurrent pruning needs no locking.
func (r *MongoBusinessRepo) RemoveTokens(id string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"fcmTokens": bson.M{"$in": tokens}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove tokens for business %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}
