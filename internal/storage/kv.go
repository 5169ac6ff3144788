// ABOUTME: Interface definition for durable string key-value storage.
// ABOUTME: Backends are selected by name and opened through Open.
package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KeyValue stores string values under string keys.
type KeyValue interface {
	// Get returns the value for key. ok is false when the key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// OpenOptions selects and configures a KeyValue backend.
type OpenOptions struct {
	Backend       string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open creates the backend named by opts.Backend. An empty name means file.
func Open(opts OpenOptions) (KeyValue, error) {
	switch opts.Backend {
	case "", BackendFile:
		if opts.DataDir == "" {
			return nil, fmt.Errorf("data dir is required for the file backend")
		}
		return NewFileKV(opts.DataDir)
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("redis address is required for the redis backend")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		return NewRedisKV(client), nil
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
