package feed_port

import (
	"context"
	"time"

	"suprss/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_port.go -destination=../../mocks/mock_feed_port.go -package=mocks

// FeedPort is the persistence capability for feed records.
type FeedPort interface {
	CreateFeed(ctx context.Context, feed *domain.Feed) (*domain.Feed, error)
	GetFeedByID(ctx context.Context, feedID int64) (*domain.Feed, error)
	ListFeedsByCollection(ctx context.Context, collectionID int64) ([]*domain.Feed, error)
	ListAllFeedIDs(ctx context.Context) ([]int64, error)
	UpdateFeed(ctx context.Context, feedID int64, patch domain.FeedPatch) (*domain.Feed, error)
	MarkFetched(ctx context.Context, feedID int64, fetchedAt time.Time) error
	// DeleteFeedCascade removes the feed with its articles and their
	// per-user statuses in one transaction.
	DeleteFeedCascade(ctx context.Context, feedID int64) error
}
