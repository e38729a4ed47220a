package article_gateway

import (
	"context"

	"suprss/domain"
	"suprss/driver/suprss_db"
)

// ArticleGateway adapts the Postgres repository to the article port.
type ArticleGateway struct {
	repo *suprss_db.Repository
}

func NewArticleGateway(repo *suprss_db.Repository) *ArticleGateway {
	return &ArticleGateway{repo: repo}
}

func (g *ArticleGateway) InsertIfNew(ctx context.Context, article *domain.Article) (bool, error) {
	return g.repo.InsertIfNew(ctx, article)
}

func (g *ArticleGateway) CountByFeed(ctx context.Context, feedID int64) (int64, error) {
	return g.repo.CountByFeed(ctx, feedID)
}

func (g *ArticleGateway) ListByFeed(ctx context.Context, feedID int64) ([]*domain.Article, error) {
	return g.repo.ListByFeed(ctx, feedID)
}

func (g *ArticleGateway) ListFiltered(ctx context.Context, userID int64, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	return g.repo.ListFiltered(ctx, userID, filter)
}

func (g *ArticleGateway) GetArticleFeed(ctx context.Context, articleID int64) (int64, int64, error) {
	return g.repo.GetArticleFeed(ctx, articleID)
}
