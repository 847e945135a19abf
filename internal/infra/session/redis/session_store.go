package redis

import (
	"context"
	"time"

	"estate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	tokenKeyPrefix   = "session:token:"
)

// The session key is the single authority on which token is live. Reverse
// index entries left behind by a rotation are not deleted inside the scripts
// (their names depend on the stored value, and scripts may only touch keys
// declared in KEYS); instead Lookup cross-checks every hit against the
// session key, so a stale entry can never resolve.

// putScript replaces a user's session unconditionally and writes the reverse
// index for the new token. KEYS[1] session key, KEYS[2] new reverse key.
var putScript = redis.NewScript(`
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// casScript rotates the session only if the stored token still equals the
// presented one. Returns 0 on mismatch or missing session, so exactly one of
// two concurrent rotations with the same token can win. KEYS[1] session key,
// KEYS[2] reverse key of the new token.
var casScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur or cur ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
redis.call('SET', KEYS[2], ARGV[4], 'PX', ARGV[3])
return 1
`)

// sessionStore implements the repository.SessionStore interface.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(client *redis.Client) repository.SessionStore {
	return &sessionStore{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return sessionKeyPrefix + userID.String()
}

func tokenKey(token string) string {
	return tokenKeyPrefix + token
}

// Put stores token as the user's single active session, replacing any
// previous one.
func (store *sessionStore) Put(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	err := putScript.Run(ctx, store.client,
		[]string{sessionKey(userID), tokenKey(token)},
		token, userID.String(), ttl.Milliseconds(),
	).Err()
	if err != nil {
		return errors.Wrap(err, "failed to put session")
	}

	return nil
}

// Get returns the user's active refresh token.
func (store *sessionStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := store.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrSessionNotFound
		}

		return "", errors.Wrap(err, "failed to get session")
	}

	return token, nil
}

// Lookup resolves a refresh token back to its owner via the reverse index,
// then confirms the token is still the one stored under the session key. A
// reverse entry orphaned by a rotation fails the cross-check and is pruned.
func (store *sessionStore) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := store.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, repository.ErrSessionNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to look up session token")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "malformed user id in session index")
	}

	current, err := store.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return uuid.Nil, errors.Wrap(err, "failed to cross-check session")
	}
	if errors.Is(err, redis.Nil) || current != token {
		store.client.Del(ctx, tokenKey(token))

		return uuid.Nil, repository.ErrSessionNotFound
	}

	return userID, nil
}

// CompareAndSwap atomically replaces oldToken with newToken. It returns
// repository.ErrSessionConflict when the stored token no longer matches
// oldToken, which is how a lost rotation race surfaces.
func (store *sessionStore) CompareAndSwap(
	ctx context.Context, userID uuid.UUID, oldToken, newToken string, ttl time.Duration,
) error {
	swapped, err := casScript.Run(ctx, store.client,
		[]string{sessionKey(userID), tokenKey(newToken)},
		oldToken, newToken, ttl.Milliseconds(), userID.String(),
	).Int64()
	if err != nil {
		return errors.Wrap(err, "failed to rotate session")
	}
	if swapped == 0 {
		return repository.ErrSessionConflict
	}

	return nil
}

// Delete removes the user's session. The reverse index entry of the deleted
// token is left to the Lookup cross-check and its TTL. Deleting an absent
// session is not an error.
func (store *sessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := store.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
