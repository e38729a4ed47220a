// Package ingest_usecase is the fetch-parse-upsert pipeline: one run pulls
// a feed document, normalizes its items and attempts a dedup-guarded insert
// per item. Running it twice against an unchanged document creates nothing
// the second time.
package ingest_usecase

import (
	"context"
	"fmt"
	"time"

	"suprss/domain"
	"suprss/port/article_port"
	"suprss/port/feed_port"
	"suprss/port/fetch_feed_port"
	"suprss/utils/html_parser"
	"suprss/utils/logger"

	"github.com/araddon/dateparse"
)

const untitledArticle = "(untitled)"

type IngestUsecase struct {
	feedGateway    feed_port.FeedPort
	articleGateway article_port.ArticlePort
	fetchGateway   fetch_feed_port.FetchFeedPort
	now            func() time.Time
}

func NewIngestUsecase(
	feedGateway feed_port.FeedPort,
	articleGateway article_port.ArticlePort,
	fetchGateway fetch_feed_port.FetchFeedPort,
) *IngestUsecase {
	return &IngestUsecase{
		feedGateway:    feedGateway,
		articleGateway: articleGateway,
		fetchGateway:   fetchGateway,
		now:            time.Now,
	}
}

// Ingest runs the pipeline for one feed. The INACTIVE gate lives here, not
// only in the interactive path, so scheduled firings honor it too. Fetch and
// parse failures propagate untouched; retry policy belongs to the scheduler.
func (u *IngestUsecase) Ingest(ctx context.Context, feedID int64) (*domain.IngestResult, error) {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}

	if feed.Status == domain.FeedStatusInactive {
		return nil, domain.ErrFeedInactive
	}

	items, err := u.fetchGateway.FetchFeedItems(ctx, feed.URL)
	if err != nil {
		return nil, err
	}

	result := &domain.IngestResult{}
	for _, item := range items {
		result.Processed++

		candidate := normalizeItem(feed.ID, item)
		if candidate == nil {
			// No link and no id: the entry cannot be addressed, drop
			// it silently rather than fail the whole run.
			logger.SafeWarn("skipping unaddressable feed item", "feed_id", feed.ID, "title", item.Title)
			continue
		}

		inserted, err := u.articleGateway.InsertIfNew(ctx, candidate)
		if err != nil {
			// Each item's insert is independent; one bad row must not
			// sink the rest of the document.
			logger.SafeError("article insert failed", "feed_id", feed.ID, "url", candidate.URL, "error", err)
			continue
		}
		if inserted {
			result.Created++
		}
	}

	// The feed was checked, whether or not anything changed.
	if err := u.feedGateway.MarkFetched(ctx, feed.ID, u.now()); err != nil {
		return nil, fmt.Errorf("mark feed fetched: %w", err)
	}

	logger.SafeInfo("feed ingested", "feed_id", feed.ID, "processed", result.Processed, "created", result.Created)

	return result, nil
}

// normalizeItem maps a parsed item onto an article candidate. Returns nil
// when the item has neither link nor guid to serve as its URL.
func normalizeItem(feedID int64, item *domain.FeedItem) *domain.Article {
	url := item.Link
	if url == "" {
		url = item.GUID
	}
	if url == "" {
		return nil
	}

	title := item.Title
	if title == "" {
		title = untitledArticle
	}

	article := &domain.Article{
		FeedID:      feedID,
		URL:         url,
		Title:       title,
		PublishedAt: publishedAt(item),
		Summary:     html_parser.StripTextPtr(item.Summary),
		ContentText: html_parser.StripTextPtr(item.Content),
	}

	if item.GUID != "" {
		guid := item.GUID
		article.GUID = &guid
	}
	if len(item.Authors) > 0 {
		author := item.Authors[0]
		article.Author = &author
	}

	return article
}

// publishedAt prefers the parser's normalized timestamp and falls back to
// parsing the raw date string; a date that resists both stays nil.
func publishedAt(item *domain.FeedItem) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	if item.Published == "" {
		return nil
	}
	parsed, err := dateparse.ParseAny(item.Published)
	if err != nil {
		return nil
	}
	return &parsed
}
