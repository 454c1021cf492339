package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// fakeRedis is an in-memory redisAPI.
type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
	delErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.delErr != nil {
		return redis.NewIntResult(0, f.delErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestPostCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	api := newFakeRedis()
	c := newPostCache(api, time.Minute)

	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	post := model.Post{
		ID:        uuid.New(),
		Title:     "Hello",
		Content:   "World!",
		ImageURL:  "images/a.png",
		CreatorID: uuid.New(),
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	_, ok, err := c.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, post))
	assert.Equal(t, time.Minute, api.ttls["post:"+post.ID.String()])

	got, ok, err := c.Get(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, post.Title, got.Title)
	assert.True(t, post.UpdatedAt.Equal(got.UpdatedAt))

	require.NoError(t, c.Delete(ctx, post.ID))
	_, ok, err = c.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostCache_Errors(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	api := newFakeRedis()
	api.getErr = errors.New("conn refused")
	api.setErr = errors.New("conn refused")
	api.delErr = errors.New("conn refused")
	c := newPostCache(api, time.Minute)

	_, ok, err := c.Get(ctx, id)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to get cached post")
	assert.ErrorContains(t, c.Set(ctx, model.Post{ID: id}), "failed to cache post")
	assert.ErrorContains(t, c.Delete(ctx, id), "failed to evict cached post")
}

func TestPostCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	api := newFakeRedis()
	api.data["post:"+id.String()] = "{not json"

	_, ok, err := newPostCache(api, time.Minute).Get(ctx, id)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to decode cached post")
}
