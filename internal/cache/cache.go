package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

// Cache stores rendered media-details payloads and their ETags in redis so
// the read path can skip the database and the object store.
type Cache struct {
	client redis.Cmdable
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

// NewCacheWithClient is used by tests to plug in a miniredis-backed client.
func NewCacheWithClient(client redis.Cmdable) *Cache {
	return &Cache{client: client}
}

func (c *Cache) GetMediaDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, detailsKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagMediaDetails(ctx context.Context, id uuid.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetMediaDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	if err := c.client.Set(ctx, detailsKey(id), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("failed caching details for media #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagMediaDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(id), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("failed caching etag for media #%s: %v", id, err)
	}
}

func (c *Cache) DeleteMediaDetails(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, detailsKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagMediaDetails(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, etagKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func detailsKey(id uuid.UUID) string {
	return "media:" + id.String()
}

func etagKey(id uuid.UUID) string {
	return "media:etag:" + id.String()
}
