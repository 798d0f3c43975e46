package likes

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "portfolio:likes:"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps each client's flags in a Redis set, so several server
// instances can share them
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore connects and pings the server
func NewRedisStore(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.Info("Redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return &RedisStore{client: client, logger: logger}, nil
}

func clientKey(clientID string) string {
	return keyPrefix + clientID
}

func (r *RedisStore) Has(ctx context.Context, clientID, key string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, clientKey(clientID), key).Result()
	if err != nil {
		r.logger.Error("Like flag lookup failed", zap.String("client_id", clientID), zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("redis sismember: %w", err)
	}
	return ok, nil
}

func (r *RedisStore) Set(ctx context.Context, clientID, key string) error {
	if err := r.client.SAdd(ctx, clientKey(clientID), key).Err(); err != nil {
		r.logger.Error("Like flag write failed", zap.String("client_id", clientID), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redis sadd: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
