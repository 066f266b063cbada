package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session", func(t *testing.T) {
		store, _ := setupRedisStore(t)
		_, err := store.Get(ctx, "nope")
		assert.Equal(t, ErrNoSession, err)
	})

	t.Run("set then get", func(t *testing.T) {
		store, mr := setupRedisStore(t)
		require.NoError(t, store.Set(ctx, "sid-1", "user-1"))

		userID, err := store.Get(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)

		// Pointer has no expiry; it lives until logout.
		assert.Equal(t, int64(0), int64(mr.TTL("sos:session:sid-1")))
	})

	t.Run("delete clears the pointer", func(t *testing.T) {
		store, _ := setupRedisStore(t)
		require.NoError(t, store.Set(ctx, "sid-1", "user-1"))
		require.NoError(t, store.Delete(ctx, "sid-1"))

		_, err := store.Get(ctx, "sid-1")
		assert.Equal(t, ErrNoSession, err)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store, _ := setupRedisStore(t)
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "sid")
	assert.Equal(t, ErrNoSession, err)

	require.NoError(t, store.Set(ctx, "sid", "user-1"))
	userID, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Delete(ctx, "sid"))
	_, err = store.Get(ctx, "sid")
	assert.Equal(t, ErrNoSession, err)
}
