package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quizportal/dto"
)

// ErrCacheMiss means nothing usable is cached.
var ErrCacheMiss = errors.New("cache miss")

const recentArticlesKey = "articles:recent"

type RedisArticleCache struct {
	client redis.Cmdable
}

func NewRedisArticleCache(client redis.Cmdable) *RedisArticleCache {
	return &RedisArticleCache{client: client}
}

func (c *RedisArticleCache) GetRecent(ctx context.Context) ([]dto.ArticleDto, error) {
	data, err := c.client.Get(ctx, recentArticlesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var articles []dto.ArticleDto
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached articles: %w", err)
	}
	return articles, nil
}

func (c *RedisArticleCache) SetRecent(ctx context.Context, articles []dto.ArticleDto, ttl time.Duration) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to marshal articles: %w", err)
	}
	return c.client.Set(ctx, recentArticlesKey, data, ttl).Err()
}
