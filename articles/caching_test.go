package articles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	articlemocks "quizportal/articles/mocks"
	"quizportal/cache"
	"quizportal/dto"
)

func TestCachingProviderGetRecentArticles(t *testing.T) {
	fresh := []dto.ArticleDto{{ArticleID: "A1"}, {ArticleID: "A2"}, {ArticleID: "A3"}}
	ttl := time.Minute

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (Provider, Cache)
		count   int
		wantRes []dto.ArticleDto
		wantErr error
	}{
		{
			name: "cache hit trims to count",
			mock: func(ctrl *gomock.Controller) (Provider, Cache) {
				up := articlemocks.NewMockProvider(ctrl)
				c := articlemocks.NewMockCache(ctrl)
				c.EXPECT().GetRecent(gomock.Any()).Return(fresh, nil)
				return up, c
			},
			count:   2,
			wantRes: fresh[:2],
		},
		{
			name: "cache miss loads upstream and stores",
			mock: func(ctrl *gomock.Controller) (Provider, Cache) {
				up := articlemocks.NewMockProvider(ctrl)
				c := articlemocks.NewMockCache(ctrl)
				c.EXPECT().GetRecent(gomock.Any()).Return(nil, cache.ErrCacheMiss)
				up.EXPECT().GetRecentArticles(gomock.Any(), 3).Return(fresh, nil)
				c.EXPECT().SetRecent(gomock.Any(), fresh, ttl).Return(nil)
				return up, c
			},
			count:   3,
			wantRes: fresh,
		},
		{
			name: "cache failures are bypassed",
			mock: func(ctrl *gomock.Controller) (Provider, Cache) {
				up := articlemocks.NewMockProvider(ctrl)
				c := articlemocks.NewMockCache(ctrl)
				c.EXPECT().GetRecent(gomock.Any()).Return(nil, errors.New("redis down"))
				up.EXPECT().GetRecentArticles(gomock.Any(), 3).Return(fresh, nil)
				c.EXPECT().SetRecent(gomock.Any(), fresh, ttl).Return(errors.New("redis down"))
				return up, c
			},
			count:   3,
			wantRes: fresh,
		},
		{
			name: "upstream error",
			mock: func(ctrl *gomock.Controller) (Provider, Cache) {
				up := articlemocks.NewMockProvider(ctrl)
				c := articlemocks.NewMockCache(ctrl)
				c.EXPECT().GetRecent(gomock.Any()).Return(nil, cache.ErrCacheMiss)
				up.EXPECT().GetRecentArticles(gomock.Any(), 5).Return(nil, ErrEmptyFeed)
				return up, c
			},
			count:   5,
			wantErr: ErrEmptyFeed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			up, c := tc.mock(ctrl)
			p := NewCachingProvider(up, c, ttl)

			res, err := p.GetRecentArticles(context.Background(), tc.count)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestRefresherRunWarmsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := articlemocks.NewMockProvider(ctrl)
	c := articlemocks.NewMockCache(ctrl)
	fresh := []dto.ArticleDto{{ArticleID: "A1"}}
	up.EXPECT().GetRecentArticles(gomock.Any(), RecentCount).Return(fresh, nil)
	c.EXPECT().SetRecent(gomock.Any(), fresh, time.Minute).Return(nil)

	r := NewRefresher(NewCachingProvider(up, c, time.Minute), time.Second)
	r.run()
}

func TestRefresherRejectsBadSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewRefresher(NewCachingProvider(articlemocks.NewMockProvider(ctrl), articlemocks.NewMockCache(ctrl), time.Minute), time.Second)
	assert.Error(t, r.Start("not a cron spec"))
}
