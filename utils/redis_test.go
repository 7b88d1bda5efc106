package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	cache := NewCache(NewRedisClient(mr.Addr(), ""), time.Minute)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestCache_RoundTrip(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	var out []map[string]any
	hit, err := cache.GetCached(ctx, "properties:missing", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	in := []map[string]any{{"id": "abc", "city": "Austin"}}
	require.NoError(t, cache.SetCached(ctx, "properties:k", in))

	hit, err = cache.GetCached(ctx, "properties:k", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Austin", out[0]["city"])

	mr.FastForward(2 * time.Minute)
	hit, err = cache.GetCached(ctx, "properties:k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_InvalidatePrefix(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCached(ctx, "properties:a", 1))
	require.NoError(t, cache.SetCached(ctx, "properties:b", 2))
	require.NoError(t, cache.SetCached(ctx, "inquiries:a", 3))

	require.NoError(t, cache.InvalidatePrefix(ctx, "properties"))

	assert.False(t, mr.Exists("properties:a"))
	assert.False(t, mr.Exists("properties:b"))
	assert.True(t, mr.Exists("inquiries:a"))

	require.NoError(t, cache.InvalidatePrefix(ctx, "properties"))
}

func TestCache_Generation(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, "properties")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, cache.SetCached(ctx, "properties:a", 1))
	require.NoError(t, cache.BumpGeneration(ctx, "properties"))
	require.NoError(t, cache.BumpGeneration(ctx, "properties"))

	gen, err = cache.Generation(ctx, "properties")
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
	assert.False(t, mr.Exists("properties:a"))
}

func TestCache_Unreachable(t *testing.T) {
	cache, mr := setupCache(t)
	mr.Close()

	assert.Error(t, cache.Ping(context.Background()))
	_, err := cache.GetCached(context.Background(), "properties:k", &[]any{})
	assert.Error(t, err)
}

func TestGenerateQueryCacheKey(t *testing.T) {
	a := GenerateQueryCacheKey("properties", map[string]string{"city": "Austin", "limit": "20"})
	b := GenerateQueryCacheKey("properties", map[string]string{"limit": "20", "city": "Austin"})
	c := GenerateQueryCacheKey("properties", map[string]string{"city": "Dallas", "limit": "20"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^properties:[0-9a-f]{32}$`, a)
}
