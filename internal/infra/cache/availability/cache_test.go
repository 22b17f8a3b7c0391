package availability

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/pkg/ptr"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, 30*time.Second), mr
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	values := []types.TimeString{"09:00", "09:30", "10:00"}
	require.NoError(t, cache.Set(ctx, date, 45, ptr.Ptr(int64(7)), values))

	got, found, err := cache.Get(ctx, date, 45, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, values, got)
}

func TestCache_MissOnDifferentKey(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, date, 45, ptr.Ptr(int64(7)), []types.TimeString{"09:00"}))

	// Другая длительность
	_, found, err := cache.Get(ctx, date, 30, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.False(t, found)

	// Другой барбер
	_, found, err = cache.Get(ctx, date, 45, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, date, 45, nil, []types.TimeString{"09:00"}))

	mr.FastForward(31 * time.Second)

	_, found, err := cache.Get(ctx, date, 45, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)

	require.NoError(t, cache.Set(ctx, date, 30, ptr.Ptr(int64(7)), []types.TimeString{"09:00"}))
	require.NoError(t, cache.Set(ctx, date, 45, ptr.Ptr(int64(7)), []types.TimeString{"09:30"}))
	require.NoError(t, cache.Set(ctx, otherDate, 30, ptr.Ptr(int64(7)), []types.TimeString{"10:00"}))

	require.NoError(t, cache.Invalidate(ctx, date, ptr.Ptr(int64(7))))

	// Обе длительности на дату сброшены
	_, found, err := cache.Get(ctx, date, 30, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = cache.Get(ctx, date, 45, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.False(t, found)

	// Другая дата не тронута
	_, found, err = cache.Get(ctx, otherDate, 30, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCache_EmptyListIsCached(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, date, 45, nil, []types.TimeString{}))

	got, found, err := cache.Get(ctx, date, 45, nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}
