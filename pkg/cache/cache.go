// Package cache owns the shared Redis connection. The token store is its
// only user when TOKEN_STORE=redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/ordermanager/config"
)

var RDB *redis.Client

// Connect initialises the Redis client and verifies the connection with a ping.
// Returns an error so the caller can react (log warning, fall back, or abort).
func Connect(ctx context.Context) (*redis.Client, error) {
	return connect(ctx, config.RedisAddr(), config.RedisPassword())
}

func connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          0,
		DialTimeout: 2 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close() //nolint:errcheck
		return nil, fmt.Errorf("cache: redis ping %s: %w", addr, err)
	}
	RDB = rdb
	return rdb, nil
}

// Close releases RDB, if connected.
func Close() error {
	if RDB == nil {
		return nil
	}
	err := RDB.Close()
	RDB = nil
	return err
}
