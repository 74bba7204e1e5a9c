package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultRedisKey = "dashgate:session"

// RedisStore persists the session record under a single Redis key. It is
// an alternative to [FileStore] for deployments that already run a local
// Redis instance; the record layout and the self-healing contract are
// identical.
type RedisStore struct {
	client *redis.Client
	key    string
	logger zerolog.Logger

	// OnPurge, when set, is invoked after a malformed record has been
	// cleared during Read.
	OnPurge func()
}

// NewRedisStore returns a RedisStore writing under key. An empty key falls
// back to the well-known default.
func NewRedisStore(client *redis.Client, key string, logger zerolog.Logger) *RedisStore {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{
		client: client,
		key:    key,
		logger: logger.With().Str("component", "redisstore").Logger(),
	}
}

// Read implements [Store]. Redis unavailability is reported as "no
// session" — the caller degrades to the unauthenticated resting state.
func (s *RedisStore) Read(ctx context.Context) (Identity, bool) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("session key unreadable")
		}
		return Identity{}, false
	}

	ident, err := decodeRecord(data)
	if err != nil {
		s.logger.Warn().Str("key", s.key).Msg("purging malformed session record")
		if delErr := s.client.Del(ctx, s.key).Err(); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("session key purge failed")
		}
		if s.OnPurge != nil {
			s.OnPurge()
		}
		return Identity{}, false
	}

	return ident, true
}

// Write implements [Store]. The record has no TTL: session lifetime is
// governed by explicit logout, not expiry.
func (s *RedisStore) Write(ctx context.Context, ident Identity) error {
	data, err := encodeRecord(ident)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Clear implements [Store]. Deleting an absent key is a no-op.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
