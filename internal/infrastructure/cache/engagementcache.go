package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

const (
	engagementKeyPrefix = "bill:engagement:"

	fieldLikes    = "likes"
	fieldComments = "comments"
	fieldViews    = "views"
)

// RedisEngagementCache throttles upstream metadata fetches: a bill whose
// counters are present here was refreshed within the TTL. Implements the
// application metadata.Cache port.
type RedisEngagementCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisEngagementCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisEngagementCache {
	return &RedisEngagementCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisEngagementCache) key(billID uint) string {
	return fmt.Sprintf("%s%d", engagementKeyPrefix, billID)
}

func (c *RedisEngagementCache) Get(ctx context.Context, billID uint) (vo.Engagement, bool, error) {
	values, err := c.client.HGetAll(ctx, c.key(billID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return vo.Engagement{}, false, nil
		}
		return vo.Engagement{}, false, fmt.Errorf("failed to read engagement cache: %w", err)
	}
	if len(values) == 0 {
		return vo.Engagement{}, false, nil
	}

	var likes, comments, views uint64
	if _, err := fmt.Sscanf(values[fieldLikes], "%d", &likes); err != nil {
		return vo.Engagement{}, false, nil
	}
	if _, err := fmt.Sscanf(values[fieldComments], "%d", &comments); err != nil {
		return vo.Engagement{}, false, nil
	}
	if _, err := fmt.Sscanf(values[fieldViews], "%d", &views); err != nil {
		return vo.Engagement{}, false, nil
	}

	return vo.ReconstructEngagement(likes, comments, views), true, nil
}

func (c *RedisEngagementCache) Set(ctx context.Context, billID uint, e vo.Engagement) error {
	key := c.key(billID)

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key,
		fieldLikes, e.Likes(),
		fieldComments, e.Comments(),
		fieldViews, e.Views(),
	)
	pipe.Expire(ctx, key, c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write engagement cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached counters, forcing the next refresh to hit
// the upstream API.
func (c *RedisEngagementCache) Invalidate(ctx context.Context, billID uint) error {
	if err := c.client.Del(ctx, c.key(billID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate engagement cache: %w", err)
	}
	return nil
}
