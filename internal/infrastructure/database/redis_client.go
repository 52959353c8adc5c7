package database

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis creates the Redis client that holds control-panel credentials.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (default: empty)
//   - REDIS_DB (default: 0)
//
// A failed ping is logged but not fatal: panel sessions degrade, orders and
// payments keep working.
func ConnectRedis(logger *zap.Logger) *redis.Client {
	db, err := strconv.Atoi(getenvDefault("REDIS_DB", "0"))
	if err != nil {
		db = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: getenvDefault("REDIS_PASSWORD", ""),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed, panel sessions unavailable until it recovers", zap.Error(err))
	}

	return client
}
