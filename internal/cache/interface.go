package cache

import (
	"context"
	"time"
)

// Service defines the cache operations the seeder checkpoint needs.
// Values are plain strings; callers encode anything richer themselves.
type Service interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
