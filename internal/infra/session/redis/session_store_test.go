package redis

import (
	"context"
	"testing"
	"time"

	"estate/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, repository.SessionStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewSessionStore(client)
}

func TestSessionStore_PutAndGet(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	token := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, token, time.Hour))

	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	owner, err := store.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, owner)
}

func TestSessionStore_PutReplacesPreviousSession(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	first := uuid.NewString()
	second := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, first, time.Hour))
	require.NoError(t, store.Put(ctx, userID, second, time.Hour))

	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	// The first token must no longer resolve to anyone.
	_, err = store.Lookup(ctx, first)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	owner, err := store.Lookup(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, userID, owner)
}

func TestSessionStore_LookupPrunesStaleReverseIndex(t *testing.T) {
	mr, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	first := uuid.NewString()
	second := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, first, time.Hour))
	require.NoError(t, store.Put(ctx, userID, second, time.Hour))

	// The replaced token's reverse entry still exists but fails the
	// cross-check against the session key and is removed on the way out.
	require.True(t, mr.Exists(tokenKey(first)))

	_, err := store.Lookup(ctx, first)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.False(t, mr.Exists(tokenKey(first)))
}

func TestSessionStore_GetMissing(t *testing.T) {
	_, store := newTestStore(t)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionStore_LookupMissing(t *testing.T) {
	_, store := newTestStore(t)

	_, err := store.Lookup(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionStore_CompareAndSwap(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	oldToken := uuid.NewString()
	newToken := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, oldToken, time.Hour))
	require.NoError(t, store.CompareAndSwap(ctx, userID, oldToken, newToken, time.Hour))

	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, newToken, got)

	_, err = store.Lookup(ctx, oldToken)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	owner, err := store.Lookup(ctx, newToken)
	require.NoError(t, err)
	assert.Equal(t, userID, owner)
}

func TestSessionStore_CompareAndSwapStaleToken(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	current := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, current, time.Hour))

	err := store.CompareAndSwap(ctx, userID, uuid.NewString(), uuid.NewString(), time.Hour)
	assert.ErrorIs(t, err, repository.ErrSessionConflict)

	// The losing attempt must not disturb the stored session.
	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestSessionStore_CompareAndSwapSingleWinner(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	shared := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, shared, time.Hour))

	// Two rotations race with the same presented token; the second sees the
	// already rotated value and must fail.
	firstNew := uuid.NewString()
	require.NoError(t, store.CompareAndSwap(ctx, userID, shared, firstNew, time.Hour))

	err := store.CompareAndSwap(ctx, userID, shared, uuid.NewString(), time.Hour)
	assert.ErrorIs(t, err, repository.ErrSessionConflict)

	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, firstNew, got)
}

func TestSessionStore_CompareAndSwapMissingSession(t *testing.T) {
	_, store := newTestStore(t)

	err := store.CompareAndSwap(context.Background(), uuid.New(), uuid.NewString(), uuid.NewString(), time.Hour)
	assert.ErrorIs(t, err, repository.ErrSessionConflict)
}

func TestSessionStore_Delete(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	token := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, token, time.Hour))
	require.NoError(t, store.Delete(ctx, userID))

	_, err := store.Get(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionStore_DeleteAbsent(t *testing.T) {
	_, store := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), uuid.New()))
}

func TestSessionStore_Expiry(t *testing.T) {
	mr, store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	token := uuid.NewString()

	require.NoError(t, store.Put(ctx, userID, token, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
