// Package articles supplies the candidate articles staff build quizzes from.
package articles

import (
	"context"
	"time"

	"quizportal/dto"
)

// RecentCount is how many articles the authoring screens offer.
const RecentCount = 5

//go:generate mockgen -source=./provider.go -package=articlemocks -destination=./mocks/provider.mock.go Provider,Cache
type Provider interface {
	GetRecentArticles(ctx context.Context, count int) ([]dto.ArticleDto, error)
}

// Cache stores the most recent article list.
type Cache interface {
	GetRecent(ctx context.Context) ([]dto.ArticleDto, error)
	SetRecent(ctx context.Context, articles []dto.ArticleDto, ttl time.Duration) error
}
