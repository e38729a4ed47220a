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

func TestGetRole_ReturnsRole(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT role FROM collection_members").
		WithArgs(int64(10), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(domain.RoleMember))

	role, err := repo.GetRole(context.Background(), 10, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, role)
}

func TestGetRole_NonMemberIsForbidden(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT role FROM collection_members").
		WithArgs(int64(10), int64(3)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetRole(context.Background(), 10, 3)

	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetCollectionOwner(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT owner_id FROM collections").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow(int64(77)))

	ownerID, err := repo.GetCollectionOwner(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(77), ownerID)
}

func TestGetCollectionOwner_Missing(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT owner_id FROM collections").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetCollectionOwner(context.Background(), 404)

	require.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestCreateCollection_InsertsOwnerMembership(t *testing.T) {
	mock, repo := newMockRepo(t)

	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO collections").
		WithArgs(int64(10), "Tech", sql.NullString{}, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), createdAt))
	mock.ExpectExec("INSERT INTO collection_members").
		WithArgs(int64(10), int64(3), domain.RoleOwner).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	collection, err := repo.CreateCollection(context.Background(), 10, "Tech", nil, true)

	require.NoError(t, err)
	assert.Equal(t, int64(3), collection.ID)
	assert.Equal(t, int64(10), collection.OwnerID)
	assert.True(t, collection.IsShared)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRead(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO article_statuses").
		WithArgs(int64(10), int64(30), true).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "article_id", "is_read", "is_favorite"}).
			AddRow(int64(10), int64(30), true, true))

	status, err := repo.UpsertRead(context.Background(), 10, 30, true)

	require.NoError(t, err)
	assert.True(t, status.IsRead)
	assert.True(t, status.IsFavorite, "favorite flag preserved by the upsert")
}

func TestUpsertFavorite(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO article_statuses").
		WithArgs(int64(10), int64(30), false).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "article_id", "is_read", "is_favorite"}).
			AddRow(int64(10), int64(30), false, false))

	status, err := repo.UpsertFavorite(context.Background(), 10, 30, false)

	require.NoError(t, err)
	assert.False(t, status.IsFavorite)
}
