package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key prefix for session pointers: sos:session:{sid} -> user record ID.
// No TTL: the pointer survives until an explicit logout.
const sessionKeyPrefix = "sos:session:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+sid).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, userID string) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+sid, userID, 0).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
