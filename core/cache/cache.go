package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"weav-api/core/config"
	"weav-api/core/constants"
	"weav-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of redis the modules rely on.
type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	SetOAuthState(ctx context.Context, state string) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// InitRedis connects to redis using the package config.
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:InitRedis:Ping", "addr", cfg.Addr, err)
		return nil, err
	}

	logger.Info("Cache:InitRedis:Connected", "addr", cfg.Addr, "db", cfg.DB)
	return NewRedisCache(client), nil
}

func (c *RedisCache) Client() *redis.Client {
	return c.client
}

func (c *RedisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *RedisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		logger.Error("Cache:IsTokenBlacklisted", err)
		return false, err
	}
	return n > 0, nil
}

func (c *RedisCache) SetOAuthState(ctx context.Context, state string) error {
	return c.client.Set(ctx, constants.RedisKeyOAuthState+state, "1", constants.OAuthStateTTL).Err()
}

// ConsumeOAuthState reports whether the state existed and removes it.
func (c *RedisCache) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	n, err := c.client.Del(ctx, constants.RedisKeyOAuthState+state).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// GetJSON returns false without error on a cache miss.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
