package article_status_port

import (
	"context"

	"suprss/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=article_status_port.go -destination=../../mocks/mock_article_status_port.go -package=mocks

// ArticleStatusPort upserts per-user read/favorite flags. At most one row
// exists per (user, article) pair.
type ArticleStatusPort interface {
	UpsertRead(ctx context.Context, userID, articleID int64, isRead bool) (*domain.ArticleStatus, error)
	UpsertFavorite(ctx context.Context, userID, articleID int64, isFavorite bool) (*domain.ArticleStatus, error)
}
