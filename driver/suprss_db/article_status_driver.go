package suprss_db

import (
	"context"
	"fmt"

	"suprss/domain"
)

// UpsertRead sets the read flag, creating the (user, article) row on first
// toggle. The favorite flag is preserved.
func (r *Repository) UpsertRead(ctx context.Context, userID, articleID int64, isRead bool) (*domain.ArticleStatus, error) {
	query := `
		INSERT INTO article_statuses (user_id, article_id, is_read)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, article_id) DO UPDATE SET is_read = EXCLUDED.is_read
		RETURNING user_id, article_id, is_read, is_favorite
	`
	return r.scanStatus(ctx, query, userID, articleID, isRead)
}

// UpsertFavorite sets the favorite flag; the read flag is preserved.
func (r *Repository) UpsertFavorite(ctx context.Context, userID, articleID int64, isFavorite bool) (*domain.ArticleStatus, error) {
	query := `
		INSERT INTO article_statuses (user_id, article_id, is_favorite)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, article_id) DO UPDATE SET is_favorite = EXCLUDED.is_favorite
		RETURNING user_id, article_id, is_read, is_favorite
	`
	return r.scanStatus(ctx, query, userID, articleID, isFavorite)
}

func (r *Repository) scanStatus(ctx context.Context, query string, userID, articleID int64, flag bool) (*domain.ArticleStatus, error) {
	var status domain.ArticleStatus
	err := r.pool.QueryRow(ctx, query, userID, articleID, flag).
		Scan(&status.UserID, &status.ArticleID, &status.IsRead, &status.IsFavorite)
	if err != nil {
		return nil, fmt.Errorf("upsert article status (user %d, article %d): %w", userID, articleID, err)
	}
	return &status, nil
}
