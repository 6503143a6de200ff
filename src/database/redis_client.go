package database

import (
	"context"
	"fmt"
	"time"

	"Backend-FormFlow/src/config"
	"Backend-FormFlow/src/logger"

	"github.com/redis/go-redis/v9"
)

// RedisClient is nil when Redis is not configured or unreachable.
var RedisClient *redis.Client
var RedisCtx = context.Background()

var redisCfg config.RedisConfig

// InitRedis connects to Redis when REDIS_URI is set. Without it the app runs
// without cache, distributed rate limiting and background jobs.
func InitRedis(cfg config.RedisConfig) error {
	if !cfg.Enabled() {
		logger.Warn("⚠️ REDIS_URI not set. Cache and background jobs are disabled.")
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.URI, // เช่น localhost:6379
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(RedisCtx, 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("❌ failed to connect Redis: %w", err)
	}

	RedisClient = c
	redisCfg = cfg
	logger.Info("✅ Redis connected successfully")
	return nil
}

// CloseRedis ปิดการเชื่อมต่อ Redis
func CloseRedis() error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Close()
}
