package fetch_feed_gateway

import (
	"context"

	"suprss/domain"
	"suprss/driver/fetch_feed_driver"
)

// FetchFeedGateway adapts the gofeed driver to the fetch port.
type FetchFeedGateway struct {
	driver *fetch_feed_driver.FetchFeedDriver
}

func NewFetchFeedGateway(driver *fetch_feed_driver.FetchFeedDriver) *FetchFeedGateway {
	return &FetchFeedGateway{driver: driver}
}

func (g *FetchFeedGateway) FetchFeedItems(ctx context.Context, feedURL string) ([]*domain.FeedItem, error) {
	return g.driver.FetchFeedItems(ctx, feedURL)
}
