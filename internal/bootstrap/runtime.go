// Package bootstrap opens the store and cache selected by configuration and builds the
// repositories the server runs on.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"postboard/internal/cache"
	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/middleware"
	"postboard/internal/repository"
)

// Runtime holds the repositories and the connections behind them.
type Runtime struct {
	Users   repository.UserRepository
	Posts   repository.PostRepository
	Cache   *cache.Cache
	closers []closer
}

type closer struct {
	name string
	fn   func(context.Context) error
}

// InitRuntime connects to the configured store and, when REDIS_URL is set, to Redis.
// An unreachable Redis is logged and the runtime continues without caching.
func InitRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	rt := &Runtime{}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.Users = repository.NewMongoUserRepository(db)
		rt.Posts = repository.NewMongoPostRepository(db)
		rt.onClose("mongo", client.Disconnect)
	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		rt.Users = repository.NewUserRepository(db)
		rt.Posts = repository.NewPostRepository(db)
		rt.onClose("database", func(context.Context) error { return database.Close(db) })
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	rt.Cache = initCache(ctx, cfg.RedisURL)
	if rt.Cache.Enabled() {
		rt.onClose("redis", func(context.Context) error { return rt.Cache.Close() })
	}
	rt.Users = repository.NewCachedUserRepository(rt.Users, rt.Cache)

	return rt, nil
}

func initCache(ctx context.Context, redisURL string) *cache.Cache {
	if redisURL == "" {
		return cache.New(nil)
	}

	client, err := cache.Connect(ctx, redisURL)
	if err != nil {
		middleware.Logger.Warn("Redis unavailable, continuing without cache", slog.String("error", err.Error()))
		return cache.New(nil)
	}
	middleware.Logger.Info("Connected to Redis")
	return cache.New(client)
}

func (r *Runtime) onClose(name string, fn func(context.Context) error) {
	r.closers = append(r.closers, closer{name: name, fn: fn})
}

// Close releases every connection in reverse order of opening.
func (r *Runtime) Close(ctx context.Context) error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		c := r.closers[i]
		if err := c.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
