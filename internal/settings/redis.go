package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisKeyPrefix namespaces preference keys.
const RedisKeyPrefix = "tickboard:pref:"

// RedisStore keeps preferences as plain Redis strings without expiry.
type RedisStore struct {
	client *redis.Client
}

// OpenRedisStore connects to the server named by a redis:// URL and pings it.
func OpenRedisStore(ctx context.Context, rawURL string) (*RedisStore, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errors.New("redis url is empty")
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client), nil
}

// NewRedisStore wraps an existing client. The store owns it from then on.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("settings.NewRedisStore: client is nil")
	}
	return &RedisStore{client: client}
}

func redisKey(key string) string {
	return RedisKeyPrefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
