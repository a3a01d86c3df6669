package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coachview/drillgate/internal/cache/memory"
	"github.com/coachview/drillgate/internal/domain"
)

func TestStore_GetMiss(t *testing.T) {
	store := memory.NewStore()

	entry, err := store.Get(context.Background(), "absent")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.Nil(t, entry)
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	entry := &domain.CacheEntry{
		OutputText:   "Hello",
		InputTokens:  5,
		OutputTokens: 3,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, store.Set(ctx, "fp1", entry))

	got, err := store.Get(ctx, "fp1")
	require.NoError(t, err)
	require.Equal(t, entry, got)
	require.Equal(t, 1, store.Len())
}

func TestStore_FirstWriteWins(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first := &domain.CacheEntry{OutputText: "first"}
	second := &domain.CacheEntry{OutputText: "second"}

	require.NoError(t, store.Set(ctx, "fp1", first))
	require.NoError(t, store.Set(ctx, "fp1", second))

	got, err := store.Get(ctx, "fp1")
	require.NoError(t, err)
	require.Equal(t, "first", got.OutputText)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Set(ctx, "fp1", &domain.CacheEntry{OutputText: "Hello"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx, "fp1")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.Zero(t, store.Len())
}
