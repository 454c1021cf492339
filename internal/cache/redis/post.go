// Package redis caches post records in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/gophfeed-server/internal/model"
)

const keyPrefix = "post:"

// redisAPI is the subset of *redis.Client the cache uses.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ model.PostCache = (*PostCache)(nil)

// PostCache stores posts as JSON documents with a fixed TTL.
type PostCache struct {
	api redisAPI
	ttl time.Duration
}

// NewPostCache creates a cache backed by client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	return newPostCache(client, ttl)
}

func newPostCache(api redisAPI, ttl time.Duration) *PostCache {
	return &PostCache{api: api, ttl: ttl}
}

type cachedPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	CreatorID uuid.UUID `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (c *PostCache) Get(ctx context.Context, id uuid.UUID) (model.Post, bool, error) {
	raw, err := c.api.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Post{}, false, nil
	}
	if err != nil {
		return model.Post{}, false, fmt.Errorf("failed to get cached post: %w", err)
	}

	var cp cachedPost
	if err := json.Unmarshal(raw, &cp); err != nil {
		return model.Post{}, false, fmt.Errorf("failed to decode cached post: %w", err)
	}

	return model.Post(cp), true, nil
}

func (c *PostCache) Set(ctx context.Context, post model.Post) error {
	raw, err := json.Marshal(cachedPost(post))
	if err != nil {
		return fmt.Errorf("failed to encode post: %w", err)
	}

	if err := c.api.Set(ctx, key(post.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache post: %w", err)
	}
	return nil
}

func (c *PostCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.api.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to evict cached post: %w", err)
	}
	return nil
}
