package articles

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"quizportal/dto"
)

var ErrEmptyFeed = errors.New("article feed has no items")

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	GUID        string `xml:"guid"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// FeedProvider reads articles from an RSS 2.0 feed.
type FeedProvider struct {
	client  *resty.Client
	feedURL string
}

func NewFeedProvider(client *resty.Client, feedURL string) *FeedProvider {
	return &FeedProvider{client: client, feedURL: feedURL}
}

func NewRestyClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetHeader("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")
}

func (p *FeedProvider) GetRecentArticles(ctx context.Context, count int) ([]dto.ArticleDto, error) {
	resp, err := p.client.R().SetContext(ctx).Get(p.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article feed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("article feed returned status %d", resp.StatusCode())
	}

	var feed rssFeed
	if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
		return nil, fmt.Errorf("failed to parse article feed: %w", err)
	}
	if len(feed.Channel.Items) == 0 {
		return nil, ErrEmptyFeed
	}

	out := make([]dto.ArticleDto, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		id := strings.TrimSpace(item.GUID)
		if id == "" {
			id = strings.TrimSpace(item.Link)
		}
		if id == "" {
			continue
		}
		out = append(out, dto.ArticleDto{
			ArticleID:   id,
			Title:       strings.TrimSpace(item.Title),
			Summary:     strings.TrimSpace(item.Description),
			Link:        strings.TrimSpace(item.Link),
			PublishedAt: parsePubDate(item.PubDate),
		})
	}

	// Newest first; undated items keep feed order behind dated ones.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	if count > 0 && len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
