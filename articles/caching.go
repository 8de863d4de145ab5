package articles

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"quizportal/cache"
	"quizportal/dto"
)

// CachingProvider serves the recent list from Cache and falls through to the
// upstream Provider on a miss. Cache failures never fail the request.
type CachingProvider struct {
	upstream Provider
	cache    Cache
	ttl      time.Duration
}

func NewCachingProvider(upstream Provider, c Cache, ttl time.Duration) *CachingProvider {
	return &CachingProvider{upstream: upstream, cache: c, ttl: ttl}
}

func (p *CachingProvider) GetRecentArticles(ctx context.Context, count int) ([]dto.ArticleDto, error) {
	cached, err := p.cache.GetRecent(ctx)
	switch {
	case err == nil && len(cached) > 0:
		if count > 0 && len(cached) > count {
			cached = cached[:count]
		}
		return cached, nil
	case err != nil && !errors.Is(err, cache.ErrCacheMiss):
		zap.L().Warn("article cache read failed", zap.Error(err))
	}
	return p.Refresh(ctx, count)
}

// Refresh loads from upstream and rewrites the cache.
func (p *CachingProvider) Refresh(ctx context.Context, count int) ([]dto.ArticleDto, error) {
	fresh, err := p.upstream.GetRecentArticles(ctx, count)
	if err != nil {
		return nil, err
	}
	if err := p.cache.SetRecent(ctx, fresh, p.ttl); err != nil {
		zap.L().Warn("article cache write failed", zap.Error(err))
	}
	return fresh, nil
}
