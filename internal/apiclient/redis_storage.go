package apiclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/gracewaylabs/graceway-admin/pkg/config"
)

const redisKeyNamespace = "graceway:token"

// RedisStorage shares an admin session across hosts through Redis.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects to Redis with pooling/timeouts and verifies
// connectivity before handing the store back.
func NewRedisStorage(ctx context.Context, cfg config.RedisConfig) (*RedisStorage, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStorage{client: client}, nil
}

func redisOptions(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	if r == nil || r.client == nil {
		return "", errors.New("redis storage not initialized")
	}
	value, err := r.client.Get(ctx, r.buildKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	if r == nil || r.client == nil {
		return errors.New("redis storage not initialized")
	}
	return r.client.Set(ctx, r.buildKey(key), value, 0).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, keys ...string) error {
	if r == nil || r.client == nil {
		return errors.New("redis storage not initialized")
	}
	namespaced := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaced = append(namespaced, r.buildKey(key))
	}
	return r.client.Del(ctx, namespaced...).Err()
}

// Close shuts down the underlying connection pool.
func (r *RedisStorage) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisStorage) buildKey(key string) string {
	return strings.Join([]string{redisKeyNamespace, key}, ":")
}
