package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quickdesk/internal/application/category/dto"
)

const (
	categoryListKey    = "quickdesk:categories:all"
	categoryVersionKey = "quickdesk:categories:version"
)

var errStaleCategoryVersion = errors.New("category list invalidated during load")

// RedisCategoryCache stores the whole category list under one key. A version
// counter bumped on every invalidation keeps a slow load from writing back a
// list that was already replaced.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCategoryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get reports false without error on a cache miss.
func (c *RedisCategoryCache) Get(ctx context.Context) ([]*dto.CategoryDTO, bool, error) {
	data, err := c.client.Get(ctx, categoryListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read categories from redis: %w", err)
	}

	var categories []*dto.CategoryDTO
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached categories: %w", err)
	}
	return categories, true, nil
}

// Version returns the current invalidation generation. A missing counter is 0.
func (c *RedisCategoryCache) Version(ctx context.Context) (int64, error) {
	version, err := readVersion(ctx, c.client)
	if err != nil {
		return 0, fmt.Errorf("failed to read category cache version: %w", err)
	}
	return version, nil
}

// SetIfVersion stores categories unless an invalidation happened after
// version was read. It reports whether the list was stored.
func (c *RedisCategoryCache) SetIfVersion(ctx context.Context, categories []*dto.CategoryDTO, version int64) (bool, error) {
	data, err := json.Marshal(categories)
	if err != nil {
		return false, fmt.Errorf("failed to marshal categories: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return errStaleCategoryVersion
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, categoryListKey, data, c.ttl)
			return nil
		})
		return err
	}, categoryVersionKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStaleCategoryVersion), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("failed to store categories in redis: %w", err)
	}
}

// Invalidate drops the cached list and bumps the version in one transaction.
func (c *RedisCategoryCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, categoryVersionKey)
		pipe.Del(ctx, categoryListKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached categories: %w", err)
	}
	return nil
}

func readVersion(ctx context.Context, cmd redis.Cmdable) (int64, error) {
	version, err := cmd.Get(ctx, categoryVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// NoopCategoryCache always misses. It is used when redis is disabled.
type NoopCategoryCache struct{}

func (NoopCategoryCache) Get(ctx context.Context) ([]*dto.CategoryDTO, bool, error) {
	return nil, false, nil
}

func (NoopCategoryCache) Version(ctx context.Context) (int64, error) {
	return 0, nil
}

func (NoopCategoryCache) SetIfVersion(ctx context.Context, categories []*dto.CategoryDTO, version int64) (bool, error) {
	return false, nil
}

func (NoopCategoryCache) Invalidate(ctx context.Context) error {
	return nil
}
