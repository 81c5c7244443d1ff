package storage

import (
	"context"
	"fmt"
	"strings"
)

// Config selects and configures a backend.
type Config struct {
	Driver        string // file, memory, redis or sqlite
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "file":
		return NewFile(cfg.Path)
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(ctx, cfg.RedisAddr,
			WithRedisPassword(cfg.RedisPassword),
			WithRedisDB(cfg.RedisDB),
			WithRedisPrefix(cfg.RedisPrefix),
		)
	case "sqlite":
		return NewSQLite(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported store driver %q (use file, memory, redis, or sqlite)", cfg.Driver)
	}
}
