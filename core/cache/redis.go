package cache

import (
	"context"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	SetShareSnapshot(ctx context.Context, slug string, payload string, ttl time.Duration) error
	// GetShareSnapshot returns the stored payload and whether it exists.
	GetShareSnapshot(ctx context.Context, slug string) (string, bool, error)

	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "addr", cfg.Addr, "error", err)
		return nil, err
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) SetShareSnapshot(ctx context.Context, slug string, payload string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyShareSnapshot+slug, payload, ttl).Err()
}

func (c *redisCache) GetShareSnapshot(ctx context.Context, slug string) (string, bool, error) {
	val, err := c.client.Get(ctx, constants.RedisKeyShareSnapshot+slug).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
