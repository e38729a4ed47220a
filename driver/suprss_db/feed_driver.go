package suprss_db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"suprss/domain"
	sqlutil "suprss/utils/sql"
	"suprss/utils/logger"

	"github.com/jackc/pgx/v5"
)

const feedColumns = `id, collection_id, title, url, description, category, update_freq, status, last_fetched_at, created_at`

func scanFeed(row pgx.Row) (*domain.Feed, error) {
	var feed domain.Feed
	var description, category, updateFreq sql.NullString
	var lastFetchedAt sql.NullTime

	err := row.Scan(&feed.ID, &feed.CollectionID, &feed.Title, &feed.URL,
		&description, &category, &updateFreq, &feed.Status, &lastFetchedAt, &feed.CreatedAt)
	if err != nil {
		return nil, err
	}

	feed.Description = sqlutil.NullStringPtr(description)
	feed.Category = sqlutil.NullStringPtr(category)
	if updateFreq.Valid {
		feed.UpdateFreq = domain.UpdateFrequency(updateFreq.String)
	}
	feed.LastFetchedAt = sqlutil.NullTimePtr(lastFetchedAt)

	return &feed, nil
}

func (r *Repository) CreateFeed(ctx context.Context, feed *domain.Feed) (*domain.Feed, error) {
	query := `
		INSERT INTO feeds (collection_id, title, url, description, category, update_freq, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	// update_freq is NOT NULL with a 'daily' default; an unset frequency
	// must become that default here, never a NULL bind.
	updateFreq := feed.UpdateFreq
	if updateFreq == "" {
		updateFreq = domain.UpdateFreqDaily
	}

	created := *feed
	created.UpdateFreq = updateFreq
	err := r.pool.QueryRow(ctx, query,
		feed.CollectionID, feed.Title, feed.URL,
		sqlutil.PtrNullString(feed.Description), sqlutil.PtrNullString(feed.Category),
		string(updateFreq), feed.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		logger.SafeError("failed to create feed", "error", err, "url", feed.URL)
		return nil, fmt.Errorf("create feed: %w", err)
	}

	return &created, nil
}

func (r *Repository) GetFeedByID(ctx context.Context, feedID int64) (*domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE id = $1`

	feed, err := scanFeed(r.pool.QueryRow(ctx, query, feedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedNotFound
		}
		return nil, fmt.Errorf("get feed %d: %w", feedID, err)
	}

	return feed, nil
}

func (r *Repository) ListFeedsByCollection(ctx context.Context, collectionID int64) ([]*domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE collection_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list feeds for collection %d: %w", collectionID, err)
	}
	defer rows.Close()

	var feeds []*domain.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		feeds = append(feeds, feed)
	}

	return feeds, rows.Err()
}

func (r *Repository) ListAllFeedIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM feeds ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list feed ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan feed id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// UpdateFeed applies the non-nil patch fields and returns the updated row.
func (r *Repository) UpdateFeed(ctx context.Context, feedID int64, patch domain.FeedPatch) (*domain.Feed, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}
	if patch.UpdateFreq != nil {
		appendSet("update_freq", string(*patch.UpdateFreq))
	}
	if patch.Status != nil {
		appendSet("status", string(*patch.Status))
	}

	if len(sets) == 0 {
		return r.GetFeedByID(ctx, feedID)
	}

	args = append(args, feedID)
	query := fmt.Sprintf("UPDATE feeds SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), feedColumns)

	feed, err := scanFeed(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedNotFound
		}
		return nil, fmt.Errorf("update feed %d: %w", feedID, err)
	}

	return feed, nil
}

// MarkFetched stamps last_fetched_at unconditionally: the feed was checked,
// whether or not anything changed.
func (r *Repository) MarkFetched(ctx context.Context, feedID int64, fetchedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE feeds SET last_fetched_at = $1 WHERE id = $2`, fetchedAt, feedID)
	if err != nil {
		return fmt.Errorf("mark feed %d fetched: %w", feedID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}
	return nil
}

// DeleteFeedCascade removes statuses, articles and the feed row in one
// transaction, in dependency order.
func (r *Repository) DeleteFeedCascade(ctx context.Context, feedID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete feed tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.SafeWarn("rollback after feed delete", "error", rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, `
		DELETE FROM article_statuses
		WHERE article_id IN (SELECT id FROM articles WHERE feed_id = $1)`, feedID); err != nil {
		return fmt.Errorf("delete article statuses for feed %d: %w", feedID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM articles WHERE feed_id = $1`, feedID); err != nil {
		return fmt.Errorf("delete articles for feed %d: %w", feedID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM feeds WHERE id = $1`, feedID)
	if err != nil {
		return fmt.Errorf("delete feed %d: %w", feedID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete feed %d: %w", feedID, err)
	}

	return nil
}
