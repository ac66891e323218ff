// Package cache реализует кэш представлений панели поверх Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"invoiceboard/internal/dashboard/config"
	svc "invoiceboard/internal/dashboard/ports/services"
	"invoiceboard/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet        = "get"
	LogMethodSet        = "set"
	LogMethodInvalidate = "invalidate"

	ErrorFailedToGet        = "failed to get value from redis"
	ErrorFailedToSet        = "failed to set value in redis"
	ErrorFailedToInvalidate = "failed to invalidate keys in redis"
	ErrorFailedToClose      = "failed to close redis connection"
)

// RedisCache реализует интерфейс ViewCache с использованием Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache создает новый экземпляр RedisCache.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (svc.ViewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetAddress(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// Get получает значение по ключу. Отсутствие ключа не является ошибкой.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key))

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set устанавливает значение для ключа с временем жизни.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", key))

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Invalidate удаляет все ключи с указанным префиксом: после мутации
// любое кэшированное представление семейства устаревает целиком.
func (c *RedisCache) Invalidate(ctx context.Context, prefix string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodInvalidate), zap.String("prefix", prefix))

	keys, err := c.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
