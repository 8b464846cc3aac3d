// internal/services/career-advice/cache.go
package careeradvice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-advisor/internal/models"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "career:recs:"

// RecommendationCache stores model-generated recommendations per profile.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]models.CareerRecommendation, bool, error)
	Set(ctx context.Context, key string, recs []models.CareerRecommendation, ttl time.Duration) error
}

// CacheKey derives the cache key from the profile content.
func CacheKey(p *models.StudentProfile) string {
	return cacheKeyPrefix + p.Fingerprint()
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]models.CareerRecommendation, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var recs []models.CareerRecommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	if len(recs) == 0 {
		return nil, false, nil
	}
	for i := range recs {
		recs[i] = normalizeRecommendation(recs[i])
	}
	return recs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, recs []models.CareerRecommendation, ttl time.Duration) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
