package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "tagcomposer"

// Redis stores each key as a plain redis string under a prefix.
type Redis struct {
	client   *goredis.Client
	prefix   string
	addr     string
	db       int
	password string
}

type RedisOption func(*Redis)

func WithRedisPassword(password string) RedisOption {
	return func(r *Redis) {
		r.password = password
	}
}

func WithRedisDB(db int) RedisOption {
	return func(r *Redis) {
		r.db = db
	}
}

func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if strings.TrimSpace(prefix) != "" {
			r.prefix = strings.TrimSpace(prefix)
		}
	}
}

func WithRedisClient(client *goredis.Client) RedisOption {
	return func(r *Redis) {
		if client != nil {
			r.client = client
		}
	}
}

// NewRedis connects to addr and pings it.
func NewRedis(ctx context.Context, addr string, opts ...RedisOption) (*Redis, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("redis addr is required")
	}

	r := &Redis{prefix: defaultRedisPrefix, addr: addr}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = goredis.NewClient(&goredis.Options{
			Addr:     r.addr,
			Password: r.password,
			DB:       r.db,
		})
	}

	if err := r.client.Ping(ctx).Err(); err != nil {
		_ = r.client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return r, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}
