// Package redis provides a Redis-backed core.Backend.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aretw0/notekeeper/pkg/core"
)

// DefaultPrefix namespaces every key stored by notekeeper.
const DefaultPrefix = "notekeeper:"

// Config holds the connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	ReadOnly bool
}

// Backend persists keys as Redis strings.
type Backend struct {
	client *redis.Client
	config Config
}

// NewBackend creates a Backend. The connection is established lazily;
// call Initialize to verify it.
func NewBackend(config Config) *Backend {
	if config.Addr == "" {
		config.Addr = "localhost:6379"
	}
	if config.Prefix == "" {
		config.Prefix = DefaultPrefix
	}
	return &Backend{
		client: redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		}),
		config: config,
	}
}

// Initialize pings the server.
func (b *Backend) Initialize(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis %s: %w", b.config.Addr, err)
	}
	return nil
}

func (b *Backend) key(k string) string {
	return b.config.Prefix + k
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value, err := b.client.Get(ctx, b.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := b.client.Set(ctx, b.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := b.client.Del(ctx, b.key(key)).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close closes the client connection pool.
func (b *Backend) Close() error {
	return b.client.Close()
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "redis"
}

var (
	_ core.Backend     = (*Backend)(nil)
	_ core.Initializer = (*Backend)(nil)
	_ core.Closer      = (*Backend)(nil)
)
