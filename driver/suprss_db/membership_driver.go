package suprss_db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"suprss/domain"
	sqlutil "suprss/utils/sql"
	"suprss/utils/logger"

	"github.com/jackc/pgx/v5"
)

// GetRole returns the user's role in the collection. Non-membership maps to
// domain.ErrForbidden so callers can gate directly on the lookup.
func (r *Repository) GetRole(ctx context.Context, userID, collectionID int64) (domain.MemberRole, error) {
	var role domain.MemberRole
	err := r.pool.QueryRow(ctx,
		`SELECT role FROM collection_members WHERE user_id = $1 AND collection_id = $2`,
		userID, collectionID,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrForbidden
		}
		return "", fmt.Errorf("get role (user %d, collection %d): %w", userID, collectionID, err)
	}
	return role, nil
}

func (r *Repository) GetCollectionOwner(ctx context.Context, collectionID int64) (int64, error) {
	var ownerID int64
	err := r.pool.QueryRow(ctx, `SELECT owner_id FROM collections WHERE id = $1`, collectionID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrCollectionNotFound
		}
		return 0, fmt.Errorf("get owner of collection %d: %w", collectionID, err)
	}
	return ownerID, nil
}

func (r *Repository) ListOwnedCollections(ctx context.Context, userID int64) ([]*domain.Collection, error) {
	query := `
		SELECT id, owner_id, name, description, is_shared, created_at
		FROM collections
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list collections owned by %d: %w", userID, err)
	}
	defer rows.Close()

	var collections []*domain.Collection
	for rows.Next() {
		var c domain.Collection
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &description, &c.IsShared, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		c.Description = sqlutil.NullStringPtr(description)
		collections = append(collections, &c)
	}

	return collections, rows.Err()
}

// CreateCollection inserts the collection and the creator's OWNER membership
// in one transaction.
func (r *Repository) CreateCollection(ctx context.Context, ownerID int64, name string, description *string, isShared bool) (*domain.Collection, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create collection tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.SafeWarn("rollback after collection create", "error", rbErr)
		}
	}()

	collection := &domain.Collection{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		IsShared:    isShared,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO collections (owner_id, name, description, is_shared)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		ownerID, name, sqlutil.PtrNullString(description), isShared,
	).Scan(&collection.ID, &collection.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert collection: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO collection_members (user_id, collection_id, role)
		VALUES ($1, $2, $3)`,
		ownerID, collection.ID, domain.RoleOwner,
	)
	if err != nil {
		return nil, fmt.Errorf("insert owner membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create collection: %w", err)
	}

	return collection, nil
}
