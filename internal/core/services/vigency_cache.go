package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const vigencyKeyPrefix = "vigency"

// VigencyCache caches resolved windows in Redis under per-subject versioned keys.
// Opening a window bumps the subject version, so stale entries are never read again
// and simply expire. A nil *VigencyCache or one without client loads straight through.
type VigencyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVigencyCache instantiates the cache helper. client may be nil.
func NewVigencyCache(client *redis.Client, ttl time.Duration) *VigencyCache {
	return &VigencyCache{client: client, ttl: ttl}
}

func versionKey(subject domain.Subject) string {
	return fmt.Sprintf("%s:version:%s:%s", vigencyKeyPrefix, subject.Kind, subject.ID)
}

// Version returns the cache version of subject, initialising it when missing.
func (c *VigencyCache) Version(ctx context.Context, subject domain.Subject) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	key := versionKey(subject)
	ver, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		// SETNX so a concurrent Bump is never overwritten
		if err := c.client.SetNX(ctx, key, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, key).Int64()
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// BuildKey composes the key of subject's window on d with the current version.
func (c *VigencyCache) BuildKey(ctx context.Context, subject domain.Subject, d time.Time) (string, error) {
	parts := []string{vigencyKeyPrefix, string(subject.Kind), subject.ID, domain.DateOnly(d).Format(time.DateOnly)}
	if c == nil || c.client == nil {
		return strings.Join(parts, ":"), nil
	}
	ver, err := c.Version(ctx, subject)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", strings.Join(parts, ":"), ver), nil
}

// FetchWindow loads a cached window or populates it using the loader.
func (c *VigencyCache) FetchWindow(ctx context.Context, key string, loader func(context.Context) (*domain.PricedWindow, error)) (*domain.PricedWindow, error) {
	if loader == nil {
		return nil, errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var w domain.PricedWindow
		if err := json.Unmarshal(payload, &w); err != nil {
			return nil, err
		}
		return &w, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	w, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return nil, err
	}
	return w, nil
}

// Bump invalidates every cached window of subject. Every instance reads the
// version from the shared Redis, so none of them needs a separate notification.
func (c *VigencyCache) Bump(ctx context.Context, subject domain.Subject) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey(subject)).Err()
}
