package feed_gateway

import (
	"context"
	"time"

	"suprss/domain"
	"suprss/driver/suprss_db"
)

// FeedGateway adapts the Postgres repository to the feed port.
type FeedGateway struct {
	repo *suprss_db.Repository
}

func NewFeedGateway(repo *suprss_db.Repository) *FeedGateway {
	return &FeedGateway{repo: repo}
}

func (g *FeedGateway) CreateFeed(ctx context.Context, feed *domain.Feed) (*domain.Feed, error) {
	return g.repo.CreateFeed(ctx, feed)
}

func (g *FeedGateway) GetFeedByID(ctx context.Context, feedID int64) (*domain.Feed, error) {
	return g.repo.GetFeedByID(ctx, feedID)
}

func (g *FeedGateway) ListFeedsByCollection(ctx context.Context, collectionID int64) ([]*domain.Feed, error) {
	return g.repo.ListFeedsByCollection(ctx, collectionID)
}

func (g *FeedGateway) ListAllFeedIDs(ctx context.Context) ([]int64, error) {
	return g.repo.ListAllFeedIDs(ctx)
}

func (g *FeedGateway) UpdateFeed(ctx context.Context, feedID int64, patch domain.FeedPatch) (*domain.Feed, error) {
	return g.repo.UpdateFeed(ctx, feedID, patch)
}

func (g *FeedGateway) MarkFetched(ctx context.Context, feedID int64, fetchedAt time.Time) error {
	return g.repo.MarkFetched(ctx, feedID, fetchedAt)
}

func (g *FeedGateway) DeleteFeedCascade(ctx context.Context, feedID int64) error {
	return g.repo.DeleteFeedCascade(ctx, feedID)
}
