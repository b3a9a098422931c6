package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mocks.go -package=mocks

// Keys of the cached read views
const (
	KeyOverview = "overview"
	KeyMenu     = "menu"
)

const (
	keyPrefix     = "meal-planner:view:"
	generationKey = "meal-planner:generation"
)

// Cache stores JSON-encoded read views. Views are stored under VersionedKey so that a view
// computed before an Invalidate is never served after it.
type Cache interface {
	// Generation returns the current view generation; Invalidate advances it
	Generation(ctx context.Context) (int64, error)
	// Get decodes the cached value of key into dest. The boolean is false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

// VersionedKey names a view within a cache generation
func VersionedKey(key string, generation int64) string {
	return fmt.Sprintf("%s@%d", key, generation)
}

// RedisCache is a Cache backed by Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure RedisCache implements Cache
var _ Cache = (*RedisCache)(nil)

// NewRedisCache connects to Redis and verifies the connection with a ping
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Generation implements Cache. A missing counter is generation 0.
func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

// Invalidate implements Cache. It advances the generation with INCR and drops the views of the
// previous one; views written later under an older generation expire with the TTL.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	gen, err := c.client.Incr(ctx, generationKey).Result()
	if err != nil {
		return err
	}
	return c.client.Del(ctx,
		keyPrefix+VersionedKey(KeyOverview, gen-1),
		keyPrefix+VersionedKey(KeyMenu, gen-1),
	).Err()
}

// Ping checks that Redis is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Noop is a Cache that never stores anything
type Noop struct{}

// Ensure Noop implements Cache
var _ Cache = Noop{}

func (Noop) Generation(context.Context) (int64, error) { return 0, nil }
func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}) error { return nil }
func (Noop) Invalidate(context.Context) error { return nil }
