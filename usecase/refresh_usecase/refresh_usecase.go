// Package refresh_usecase is the interactive entry point into the ingestion
// pipeline: it layers the membership and status gates the scheduled path
// resolved at schedule time.
package refresh_usecase

import (
	"context"

	"suprss/domain"
	"suprss/port/article_port"
	"suprss/port/feed_port"
	"suprss/port/membership_port"
	"suprss/port/refresher_port"
)

type RefreshUsecase struct {
	feedGateway       feed_port.FeedPort
	articleGateway    article_port.ArticlePort
	membershipGateway membership_port.MembershipPort
	refresher         refresher_port.Refresher
}

func NewRefreshUsecase(
	feedGateway feed_port.FeedPort,
	articleGateway article_port.ArticlePort,
	membershipGateway membership_port.MembershipPort,
	refresher refresher_port.Refresher,
) *RefreshUsecase {
	return &RefreshUsecase{
		feedGateway:       feedGateway,
		articleGateway:    articleGateway,
		membershipGateway: membershipGateway,
		refresher:         refresher,
	}
}

// ManualRefresh ingests one feed on behalf of an interactive caller. Gates
// fire in order: existence, then membership, then status. An INACTIVE feed is
// rejected before any store mutation. Added reports rows actually inserted.
func (u *RefreshUsecase) ManualRefresh(ctx context.Context, userID, feedID int64) (*domain.RefreshSummary, error) {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}

	if _, err := u.membershipGateway.GetRole(ctx, userID, feed.CollectionID); err != nil {
		return nil, err
	}

	if feed.Status == domain.FeedStatusInactive {
		return nil, domain.ErrFeedInactive
	}

	result, err := u.refresher.Ingest(ctx, feedID)
	if err != nil {
		return nil, err
	}

	total, err := u.articleGateway.CountByFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}

	return &domain.RefreshSummary{
		Added:                result.Created,
		TotalArticlesForFeed: total,
	}, nil
}
