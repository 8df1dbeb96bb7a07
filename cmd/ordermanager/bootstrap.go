package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/pkg/app"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/cache"
	"github.com/shashiranjanraj/ordermanager/pkg/database"
	"github.com/shashiranjanraj/ordermanager/pkg/logger"
)

// runtime holds what a command opened; close releases it in reverse order.
type runtime struct {
	db      *gorm.DB
	closers []func() error
}

// boot loads config, installs the logger and connects to the database.
func boot() (*runtime, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	rt := &runtime{}

	var extra []slog.Handler
	if uri := config.LogMongoURI(); uri != "" {
		h, err := logger.NewMongoHandler(uri, config.LogMongoDB(), "logs")
		if err != nil {
			return nil, err
		}
		extra = append(extra, h)
		rt.closers = append(rt.closers, func() error { h.Close(); return nil })
	}
	logger.Setup(config.AppEnv(), os.Stdout, extra...)

	if err := database.Connect(); err != nil {
		rt.close()
		return nil, err
	}
	rt.db = database.DB
	rt.closers = append(rt.closers, database.Close)
	return rt, nil
}

func (rt *runtime) close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}
	rt.closers = nil
}

// tokenStore picks the TOKEN_STORE backend. Redis registers a health check
// on a.
func (rt *runtime) tokenStore(ctx context.Context, a *app.Application) (auth.TokenStore, error) {
	switch config.TokenStore() {
	case "database", "db":
		return repositories.NewTokenRepository(rt.db), nil
	case "redis":
		rdb, err := cache.Connect(ctx)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, cache.Close)
		a.HealthCheck("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		return auth.NewRedisStore(rdb), nil
	default:
		return nil, fmt.Errorf("unsupported TOKEN_STORE %q (supported: database, redis)", config.TokenStore())
	}
}

func pingDB(db *gorm.DB) app.Check {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
