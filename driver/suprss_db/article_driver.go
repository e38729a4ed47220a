package suprss_db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"suprss/domain"
	sqlutil "suprss/utils/sql"

	"github.com/jackc/pgx/v5"
)

// InsertIfNew attempts the dedup-guarded insert. A conflict on (feed_id,
// url) or (feed_id, guid) means the item was already seen; that is reported
// as inserted=false, never as an error. Concurrent refreshes of the same
// feed rely on this as their only mutual exclusion.
func (r *Repository) InsertIfNew(ctx context.Context, article *domain.Article) (bool, error) {
	query := `
		INSERT INTO articles (feed_id, url, guid, title, author, published_at, summary, content_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query,
		article.FeedID, article.URL, sqlutil.PtrNullString(article.GUID),
		article.Title, sqlutil.PtrNullString(article.Author),
		sqlutil.PtrNullTime(article.PublishedAt),
		sqlutil.PtrNullString(article.Summary), sqlutil.PtrNullString(article.ContentText),
	)
	if err != nil {
		return false, fmt.Errorf("insert article %q: %w", article.URL, err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountByFeed(ctx context.Context, feedID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE feed_id = $1`, feedID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles for feed %d: %w", feedID, err)
	}
	return count, nil
}

const articleColumns = `id, feed_id, url, guid, title, author, published_at, summary, content_text, created_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	var guid, author, summary, contentText sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(&article.ID, &article.FeedID, &article.URL, &guid, &article.Title,
		&author, &publishedAt, &summary, &contentText, &article.CreatedAt)
	if err != nil {
		return nil, err
	}

	article.GUID = sqlutil.NullStringPtr(guid)
	article.Author = sqlutil.NullStringPtr(author)
	article.PublishedAt = sqlutil.NullTimePtr(publishedAt)
	article.Summary = sqlutil.NullStringPtr(summary)
	article.ContentText = sqlutil.NullStringPtr(contentText)

	return &article, nil
}

// ListByFeed returns every article of one feed, newest first. Stored order
// is purely published_at descending with the insertion id as tiebreak;
// ingestion order carries no meaning.
func (r *Repository) ListByFeed(ctx context.Context, feedID int64) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles
		WHERE feed_id = $1
		ORDER BY published_at DESC NULLS LAST, id DESC`

	rows, err := r.pool.Query(ctx, query, feedID)
	if err != nil {
		return nil, fmt.Errorf("list articles for feed %d: %w", feedID, err)
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// GetArticleFeed resolves an article to its feed and owning collection for
// membership checks.
func (r *Repository) GetArticleFeed(ctx context.Context, articleID int64) (int64, int64, error) {
	query := `
		SELECT a.feed_id, f.collection_id
		FROM articles a
		JOIN feeds f ON f.id = a.feed_id
		WHERE a.id = $1
	`

	var feedID, collectionID int64
	err := r.pool.QueryRow(ctx, query, articleID).Scan(&feedID, &collectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrArticleNotFound
		}
		return 0, 0, fmt.Errorf("resolve article %d: %w", articleID, err)
	}

	return feedID, collectionID, nil
}

// ListFiltered runs the collection-wide listing with optional feed,
// category, read/favorite and free-text filters, keyset-paginated on id.
func (r *Repository) ListFiltered(ctx context.Context, userID int64, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	args := []any{filter.CollectionID, userID}
	conds := []string{"f.collection_id = $1"}

	bind := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.FeedID != nil {
		conds = append(conds, "a.feed_id = "+bind(*filter.FeedID))
	}
	if filter.Category != nil {
		conds = append(conds, "f.category = "+bind(*filter.Category))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		p := bind(pattern)
		conds = append(conds, fmt.Sprintf(
			"(a.title ILIKE %[1]s OR a.summary ILIKE %[1]s OR a.content_text ILIKE %[1]s OR a.author ILIKE %[1]s)", p))
	}
	if filter.Read != nil {
		if *filter.Read {
			conds = append(conds, "COALESCE(s.is_read, FALSE) = TRUE")
		} else {
			conds = append(conds, "COALESCE(s.is_read, FALSE) = FALSE")
		}
	}
	if filter.Favorite != nil {
		if *filter.Favorite {
			conds = append(conds, "COALESCE(s.is_favorite, FALSE) = TRUE")
		} else {
			conds = append(conds, "COALESCE(s.is_favorite, FALSE) = FALSE")
		}
	}
	if filter.Cursor != nil {
		conds = append(conds, "a.id < "+bind(*filter.Cursor))
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.title, a.url, a.author, a.summary, a.published_at,
		       f.id, f.title, f.category,
		       COALESCE(s.is_read, FALSE), COALESCE(s.is_favorite, FALSE)
		FROM articles a
		JOIN feeds f ON f.id = a.feed_id
		LEFT JOIN article_statuses s ON s.article_id = a.id AND s.user_id = $2
		WHERE %s
		ORDER BY a.published_at DESC NULLS LAST, a.id DESC
		LIMIT %s`, strings.Join(conds, " AND "), bind(limit))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list filtered articles: %w", err)
	}
	defer rows.Close()

	page := &domain.ArticlePage{Items: []domain.ArticleListItem{}}
	for rows.Next() {
		var item domain.ArticleListItem
		var author, summary, category sql.NullString
		var publishedAt sql.NullTime

		err := rows.Scan(&item.ID, &item.Title, &item.URL, &author, &summary, &publishedAt,
			&item.FeedID, &item.FeedTitle, &category, &item.IsRead, &item.IsFavorite)
		if err != nil {
			return nil, fmt.Errorf("scan filtered article: %w", err)
		}

		item.Author = sqlutil.NullStringPtr(author)
		item.Summary = sqlutil.NullStringPtr(summary)
		item.PublishedAt = sqlutil.NullTimePtr(publishedAt)
		item.Category = sqlutil.NullStringPtr(category)
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(page.Items) == limit {
		last := page.Items[len(page.Items)-1].ID
		page.NextCursor = &last
	}

	return page, nil
}
