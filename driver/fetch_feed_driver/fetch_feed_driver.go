// Package fetch_feed_driver pulls remote RSS/Atom documents and normalizes
// them into domain feed items via gofeed.
package fetch_feed_driver

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"suprss/config"
	"suprss/domain"
	apperrors "suprss/utils/errors"
	"suprss/utils/logger"
	"suprss/utils/rate_limiter"

	"github.com/mmcdole/gofeed"
)

type FetchFeedDriver struct {
	client      *http.Client
	parser      *gofeed.Parser
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewFetchFeedDriver(cfg *config.Config, rateLimiter *rate_limiter.HostRateLimiter) *FetchFeedDriver {
	return &FetchFeedDriver{
		client:      newHTTPClient(cfg),
		parser:      gofeed.NewParser(),
		rateLimiter: rateLimiter,
	}
}

// FetchFeedItems downloads and parses one feed document. Transport and HTTP
// failures become FETCH_ERROR, malformed markup becomes PARSE_ERROR. Items
// with missing optional fields come back zero-valued; they are never an
// error at this boundary.
func (d *FetchFeedDriver) FetchFeedItems(ctx context.Context, feedURL string) ([]*domain.FeedItem, error) {
	if d.rateLimiter != nil {
		if err := d.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, apperrors.NewFetchError("rate limit wait interrupted",
				"driver", "FetchFeedDriver", "FetchFeedItems", err,
				map[string]any{"url": feedURL})
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, apperrors.NewFetchError("invalid feed url",
			"driver", "FetchFeedDriver", "FetchFeedItems", err,
			map[string]any{"url": feedURL})
	}
	req.Header.Set("User-Agent", "suprss/1.0 (+feed-refresh)")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError("failed to reach feed",
			"driver", "FetchFeedDriver", "FetchFeedItems", err,
			map[string]any{"url": feedURL})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewFetchError("unexpected HTTP status",
			"driver", "FetchFeedDriver", "FetchFeedItems", nil,
			map[string]any{"url": feedURL, "status": resp.StatusCode})
	}

	parsed, err := d.parser.Parse(resp.Body)
	if err != nil {
		return nil, apperrors.NewParseError("malformed feed document",
			"driver", "FetchFeedDriver", "FetchFeedItems", err,
			map[string]any{"url": feedURL})
	}

	logger.SafeInfo("feed document parsed", "url", feedURL, "title", parsed.Title, "items", len(parsed.Items))

	items := make([]*domain.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, convertItem(item))
	}

	return items, nil
}

func convertItem(item *gofeed.Item) *domain.FeedItem {
	converted := &domain.FeedItem{
		Title:           item.Title,
		Link:            item.Link,
		GUID:            item.GUID,
		Published:       item.Published,
		PublishedParsed: item.PublishedParsed,
		Summary:         item.Description,
		Content:         item.Content,
	}

	// gofeed folds dc:creator entries into Authors; the scalar Author
	// field is the legacy fallback.
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			converted.Authors = append(converted.Authors, author.Name)
		}
	}
	if len(converted.Authors) == 0 && item.Author != nil && item.Author.Name != "" {
		converted.Authors = append(converted.Authors, item.Author.Name)
	}

	return converted
}

func newHTTPClient(cfg *config.Config) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   cfg.Fetch.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     cfg.Fetch.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.Fetch.TLSHandshakeTimeout,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Fetch.ClientTimeout,
	}
}
