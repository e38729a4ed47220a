package article_port

import (
	"context"

	"suprss/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=article_port.go -destination=../../mocks/mock_article_port.go -package=mocks

// ArticlePort is the persistence capability for articles. InsertIfNew is the
// dedup boundary: a conflicting row reports inserted=false, never an error.
type ArticlePort interface {
	InsertIfNew(ctx context.Context, article *domain.Article) (inserted bool, err error)
	CountByFeed(ctx context.Context, feedID int64) (int64, error)
	ListByFeed(ctx context.Context, feedID int64) ([]*domain.Article, error)
	ListFiltered(ctx context.Context, userID int64, filter domain.ArticleFilter) (*domain.ArticlePage, error)
	GetArticleFeed(ctx context.Context, articleID int64) (feedID int64, collectionID int64, err error)
}
