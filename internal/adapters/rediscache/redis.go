// Package rediscache implements the cache and token-revocation ports on
// a shared Redis client.
package rediscache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"foodcourt/internal/core/ports"
)

// Cache implements ports.Cache.
type Cache struct {
	client *redis.Client
}

var _ ports.Cache = (*Cache)(nil)

func New(addr string) *Cache {
	return &Cache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Get returns "" with a nil error on a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: get %s: %w", key, err)
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis: del %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// revocationKey namespaces revoked token ids away from the list cache.
func revocationKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

// RevocationSet implements ports.RevocationSet on the same client. Each
// entry lives exactly as long as the token it revokes, so the set never
// grows without bound.
type RevocationSet struct {
	client *redis.Client
}

var _ ports.RevocationSet = (*RevocationSet)(nil)

func NewRevocationSet(c *Cache) *RevocationSet {
	return &RevocationSet{client: c.client}
}

func (s *RevocationSet) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revocationKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis: revoke %s: %w", tokenID, err)
	}
	return nil
}

func (s *RevocationSet) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis: check revocation of %s: %w", tokenID, err)
	}
	return n > 0, nil
}
