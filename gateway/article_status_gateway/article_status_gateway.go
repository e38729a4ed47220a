package article_status_gateway

import (
	"context"

	"suprss/domain"
	"suprss/driver/suprss_db"
)

// ArticleStatusGateway adapts the Postgres repository to the status port.
type ArticleStatusGateway struct {
	repo *suprss_db.Repository
}

func NewArticleStatusGateway(repo *suprss_db.Repository) *ArticleStatusGateway {
	return &ArticleStatusGateway{repo: repo}
}

func (g *ArticleStatusGateway) UpsertRead(ctx context.Context, userID, articleID int64, isRead bool) (*domain.ArticleStatus, error) {
	return g.repo.UpsertRead(ctx, userID, articleID, isRead)
}

func (g *ArticleStatusGateway) UpsertFavorite(ctx context.Context, userID, articleID int64, isFavorite bool) (*domain.ArticleStatus, error) {
	return g.repo.UpsertFavorite(ctx, userID, articleID, isFavorite)
}
