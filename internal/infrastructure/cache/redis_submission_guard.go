package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisSubmissionGuard implements shared.SubmissionGuard using Redis.
// Suitable for distributed deployments where multiple instances must agree
// on which order numbers are currently in flight.
type RedisSubmissionGuard struct {
	client *redis.Client
}

// NewRedisSubmissionGuard creates a Redis-backed submission guard
func NewRedisSubmissionGuard(cfg *config.RedisConfig) (*RedisSubmissionGuard, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSubmissionGuard{client: client}, nil
}

// NewRedisSubmissionGuardWithClient creates a guard with an existing client
func NewRedisSubmissionGuardWithClient(client *redis.Client) *RedisSubmissionGuard {
	return &RedisSubmissionGuard{client: client}
}

// MarkSubmitted marks a key as seen with a TTL using a single atomic SETNX.
// Returns true if the key was newly marked, false if already present.
func (g *RedisSubmissionGuard) MarkSubmitted(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark submission: %w", err)
	}
	return result, nil
}

// Release removes a key so the client may legitimately resubmit
func (g *RedisSubmissionGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release submission key: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (g *RedisSubmissionGuard) Close() error {
	return g.client.Close()
}

// Ensure RedisSubmissionGuard implements SubmissionGuard
var _ shared.SubmissionGuard = (*RedisSubmissionGuard)(nil)
