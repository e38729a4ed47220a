package suprss_db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"suprss/domain"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeed_ReturnsGeneratedFields(t *testing.T) {
	mock, repo := newMockRepo(t)

	createdAt := time.Now()
	feed := &domain.Feed{
		CollectionID: 3,
		Title:        "Example",
		URL:          "https://example.com/rss",
		UpdateFreq:   domain.UpdateFreqHourly,
		Status:       domain.FeedStatusActive,
	}

	mock.ExpectQuery("INSERT INTO feeds").
		WithArgs(int64(3), "Example", "https://example.com/rss",
			sql.NullString{}, sql.NullString{},
			"hourly", domain.FeedStatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))

	created, err := repo.CreateFeed(context.Background(), feed)

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.Equal(t, "https://example.com/rss", created.URL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeed_UnsetFrequencyStoresDaily(t *testing.T) {
	mock, repo := newMockRepo(t)

	feed := &domain.Feed{
		CollectionID: 3,
		Title:        "Example",
		URL:          "https://example.com/rss",
		Status:       domain.FeedStatusActive,
	}

	// The column is NOT NULL; an unset frequency must bind 'daily', not NULL.
	mock.ExpectQuery("INSERT INTO feeds").
		WithArgs(int64(3), "Example", "https://example.com/rss",
			sql.NullString{}, sql.NullString{},
			"daily", domain.FeedStatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(6), time.Now()))

	created, err := repo.CreateFeed(context.Background(), feed)

	require.NoError(t, err)
	assert.Equal(t, domain.UpdateFreqDaily, created.UpdateFreq)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeedByID_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM feeds WHERE id").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetFeedByID(context.Background(), 404)

	require.ErrorIs(t, err, domain.ErrFeedNotFound)
}

func TestGetFeedByID_ScansOptionalFields(t *testing.T) {
	mock, repo := newMockRepo(t)

	now := time.Now()
	fetched := now.Add(-time.Hour)

	rows := pgxmock.NewRows([]string{"id", "collection_id", "title", "url", "description", "category", "update_freq", "status", "last_fetched_at", "created_at"}).
		AddRow(int64(5), int64(3), "Example", "https://example.com/rss",
			sql.NullString{String: "news", Valid: true}, sql.NullString{},
			sql.NullString{String: "6h", Valid: true}, domain.FeedStatusActive,
			sql.NullTime{Time: fetched, Valid: true}, now)

	mock.ExpectQuery("SELECT (.+) FROM feeds WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	feed, err := repo.GetFeedByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "news", *feed.Description)
	assert.Nil(t, feed.Category)
	assert.Equal(t, domain.UpdateFreqSixHours, feed.UpdateFreq)
	assert.Equal(t, fetched, *feed.LastFetchedAt)
}

func TestUpdateFeed_BuildsSetClauseFromPatch(t *testing.T) {
	mock, repo := newMockRepo(t)

	title := "Renamed"
	freq := domain.UpdateFreqDaily
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "collection_id", "title", "url", "description", "category", "update_freq", "status", "last_fetched_at", "created_at"}).
		AddRow(int64(5), int64(3), "Renamed", "https://example.com/rss",
			sql.NullString{}, sql.NullString{},
			sql.NullString{String: "daily", Valid: true}, domain.FeedStatusActive,
			sql.NullTime{}, now)

	mock.ExpectQuery("UPDATE feeds SET title = \\$1, update_freq = \\$2").
		WithArgs("Renamed", "daily", int64(5)).
		WillReturnRows(rows)

	updated, err := repo.UpdateFeed(context.Background(), 5, domain.FeedPatch{Title: &title, UpdateFreq: &freq})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, domain.UpdateFreqDaily, updated.UpdateFreq)
}

func TestUpdateFeed_EmptyPatchReadsCurrentRow(t *testing.T) {
	mock, repo := newMockRepo(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "collection_id", "title", "url", "description", "category", "update_freq", "status", "last_fetched_at", "created_at"}).
		AddRow(int64(5), int64(3), "Example", "https://example.com/rss",
			sql.NullString{}, sql.NullString{}, sql.NullString{}, domain.FeedStatusActive,
			sql.NullTime{}, now)

	mock.ExpectQuery("SELECT (.+) FROM feeds WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	updated, err := repo.UpdateFeed(context.Background(), 5, domain.FeedPatch{})

	require.NoError(t, err)
	assert.Equal(t, "Example", updated.Title)
}

func TestMarkFetched(t *testing.T) {
	mock, repo := newMockRepo(t)

	fetchedAt := time.Now()
	mock.ExpectExec("UPDATE feeds SET last_fetched_at").
		WithArgs(fetchedAt, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkFetched(context.Background(), 5, fetchedAt))
}

func TestMarkFetched_MissingFeed(t *testing.T) {
	mock, repo := newMockRepo(t)

	fetchedAt := time.Now()
	mock.ExpectExec("UPDATE feeds SET last_fetched_at").
		WithArgs(fetchedAt, int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkFetched(context.Background(), 404, fetchedAt)

	require.ErrorIs(t, err, domain.ErrFeedNotFound)
}

func TestDeleteFeedCascade_DeletesInDependencyOrder(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM article_statuses").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 10))
	mock.ExpectExec("DELETE FROM feeds").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, repo.DeleteFeedCascade(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFeedCascade_MissingFeedRollsBack(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM article_statuses").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM feeds").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := repo.DeleteFeedCascade(context.Background(), 404)

	require.ErrorIs(t, err, domain.ErrFeedNotFound)
}

func TestListAllFeedIDs(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)).AddRow(int64(3))
	mock.ExpectQuery("SELECT id FROM feeds").WillReturnRows(rows)

	ids, err := repo.ListAllFeedIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
