package fetch_feed_port

import (
	"context"

	"suprss/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_feed_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort pulls and parses a remote feed document into candidate
// items. Failures are classified as FETCH_ERROR (transport/HTTP) or
// PARSE_ERROR (malformed markup); missing optional item fields never fail.
type FetchFeedPort interface {
	FetchFeedItems(ctx context.Context, feedURL string) ([]*domain.FeedItem, error)
}
