package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinytally/internal/domain/insights"
	"tinytally/internal/domain/tracking"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *KVStore) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewKVStore(client)
}

func TestKVStore_GetSet(t *testing.T) {
	mr, kv := setupTestRedis(t)
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, insights.ErrCacheMiss)

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, insights.ErrCacheMiss)
}

func TestKVStore_ServerDown(t *testing.T) {
	mr, kv := setupTestRedis(t)
	mr.Close()

	_, err := kv.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, insights.ErrCacheMiss)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), Options{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	_, err = NewClient(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}

func TestWindowCache_OverRedis(t *testing.T) {
	mr, kv := setupTestRedis(t)
	cache := insights.NewWindowCache(kv, 30*time.Second)
	ctx := context.Background()

	to := time.Date(2026, 5, 8, 12, 0, 0, 0, time.UTC)
	dur := 15.0
	w := insights.Window{
		From: to.AddDate(0, 0, -7),
		To:   to,
		Feeds: []tracking.FeedEvent{
			{ID: "f1", ChildID: "c1", Timestamp: to.Add(-time.Hour), Type: tracking.FeedBreastLeft, DurationMinutes: &dur},
		},
		Diapers: []tracking.DiaperEvent{
			{ID: "d1", ChildID: "c1", Timestamp: to.Add(-2 * time.Hour), Type: tracking.DiaperWet},
		},
	}

	_, gen, ok, err := cache.Get(ctx, "c1", 7)
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, gen)

	require.NoError(t, cache.Set(ctx, "c1", gen, 7, w))
	got, _, ok, err := cache.Get(ctx, "c1", 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.To.Equal(w.To))
	require.Len(t, got.Feeds, 1)
	assert.Equal(t, "f1", got.Feeds[0].ID)
	assert.True(t, got.Feeds[0].Timestamp.Equal(w.Feeds[0].Timestamp))
	require.NotNil(t, got.Feeds[0].DurationMinutes)
	assert.Equal(t, dur, *got.Feeds[0].DurationMinutes)
	require.Len(t, got.Diapers, 1)
	assert.Empty(t, got.Sleeps)

	require.NoError(t, cache.Invalidate(ctx, "c1"))
	_, _, ok, err = cache.Get(ctx, "c1", 7)
	require.NoError(t, err)
	assert.False(t, ok)

	// la clave de la ventana vieja queda con TTL
	var withTTL int
	for _, k := range mr.Keys() {
		if mr.TTL(k) > 0 {
			withTTL++
		}
	}
	assert.Equal(t, 1, withTTL)
}
