// Package article_usecase serves article listings and per-user read and
// favorite flags. Every operation is gated on collection membership; any
// role, including READER, may consume and flag articles.
package article_usecase

import (
	"context"

	"suprss/domain"
	"suprss/port/article_port"
	"suprss/port/article_status_port"
	"suprss/port/feed_port"
	"suprss/port/membership_port"
)

type ArticleUsecase struct {
	articleGateway    article_port.ArticlePort
	statusGateway     article_status_port.ArticleStatusPort
	feedGateway       feed_port.FeedPort
	membershipGateway membership_port.MembershipPort
}

func NewArticleUsecase(
	articleGateway article_port.ArticlePort,
	statusGateway article_status_port.ArticleStatusPort,
	feedGateway feed_port.FeedPort,
	membershipGateway membership_port.MembershipPort,
) *ArticleUsecase {
	return &ArticleUsecase{
		articleGateway:    articleGateway,
		statusGateway:     statusGateway,
		feedGateway:       feedGateway,
		membershipGateway: membershipGateway,
	}
}

// ListFeedArticles returns one feed's articles, newest first.
func (u *ArticleUsecase) ListFeedArticles(ctx context.Context, userID, feedID int64) ([]*domain.Article, error) {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}

	if _, err := u.membershipGateway.GetRole(ctx, userID, feed.CollectionID); err != nil {
		return nil, err
	}

	return u.articleGateway.ListByFeed(ctx, feedID)
}

// ListFiltered runs the collection-wide filtered listing with the caller's
// read/favorite flags joined in.
func (u *ArticleUsecase) ListFiltered(ctx context.Context, userID int64, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	if _, err := u.membershipGateway.GetRole(ctx, userID, filter.CollectionID); err != nil {
		return nil, err
	}

	return u.articleGateway.ListFiltered(ctx, userID, filter)
}

// MarkRead toggles the caller's read flag on an article they can access.
func (u *ArticleUsecase) MarkRead(ctx context.Context, userID, articleID int64, isRead bool) (*domain.ArticleStatus, error) {
	if err := u.requireArticleAccess(ctx, userID, articleID); err != nil {
		return nil, err
	}
	return u.statusGateway.UpsertRead(ctx, userID, articleID, isRead)
}

// MarkFavorite toggles the caller's favorite flag.
func (u *ArticleUsecase) MarkFavorite(ctx context.Context, userID, articleID int64, isFavorite bool) (*domain.ArticleStatus, error) {
	if err := u.requireArticleAccess(ctx, userID, articleID); err != nil {
		return nil, err
	}
	return u.statusGateway.UpsertFavorite(ctx, userID, articleID, isFavorite)
}

func (u *ArticleUsecase) requireArticleAccess(ctx context.Context, userID, articleID int64) error {
	_, collectionID, err := u.articleGateway.GetArticleFeed(ctx, articleID)
	if err != nil {
		return err
	}
	_, err = u.membershipGateway.GetRole(ctx, userID, collectionID)
	return err
}
