package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/config"
)

// RedisStore keeps each slot in a redis key. Unlike a cache there is no
// TTL: slots are durable until overwritten.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore connects a slot store to redis.
func NewRedisStore(cfg config.RedisConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisStore{
		client: client,
		prefix: cfg.KeyPrefix,
		logger: logger,
	}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

// Get returns the slot contents, or ErrSlotEmpty on a missing key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		s.logger.Error("slot read failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Set replaces the slot contents.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		s.logger.Error("slot write failed",
			zap.String("key", key),
			zap.Error(err))
		return err
	}
	return nil
}

// Ping verifies connectivity at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
