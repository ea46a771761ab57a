package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fitcoach/internal/models"

	"github.com/redis/go-redis/v9"
)

const recommendationTTL = 5 * time.Minute

// RecommendationCache keeps each user's recommendation list in a shared
// store so repeated reads skip the database between plan generations.
// Entries are invalidated whenever a new plan is persisted for the user.
type RecommendationCache interface {
	Get(userID uint) ([]models.Recommendation, bool, error)
	Set(userID uint, recs []models.Recommendation) error
	Invalidate(userID uint) error
	Status() (map[string]interface{}, error)
	Close() error
}

type redisRecommendationCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRecommendationCache connects to the Redis instance named by REDIS_URL.
// An unset REDIS_URL means the cache is disabled; callers skip construction.
func NewRecommendationCache() (RecommendationCache, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRecommendationCache{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *redisRecommendationCache) Close() error {
	return r.client.Close()
}

func recommendationKey(userID uint) string {
	return fmt.Sprintf("recommendations:%d", userID)
}

// Get returns the cached list for a user; found is false on a miss.
func (r *redisRecommendationCache) Get(userID uint) ([]models.Recommendation, bool, error) {
	data, err := r.client.Get(r.ctx, recommendationKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var recs []models.Recommendation
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}

	return recs, true, nil
}

// Set stores the list for a user with the standard TTL.
func (r *redisRecommendationCache) Set(userID uint, recs []models.Recommendation) error {
	jsonData, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(r.ctx, recommendationKey(userID), jsonData, recommendationTTL).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}

// Invalidate drops the cached list for a user.
func (r *redisRecommendationCache) Invalidate(userID uint) error {
	return r.client.Del(r.ctx, recommendationKey(userID)).Err()
}

// Status reports connection and pool health for the debug endpoints.
func (r *redisRecommendationCache) Status() (map[string]interface{}, error) {
	info, err := r.client.Info(r.ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
		"redis_info":   info,
	}, nil
}
