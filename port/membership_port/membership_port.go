package membership_port

import (
	"context"

	"suprss/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=membership_port.go -destination=../../mocks/mock_membership_port.go -package=mocks

// MembershipPort is the read-only view onto collection membership that this
// core consumes. Membership CRUD itself lives elsewhere.
type MembershipPort interface {
	// GetRole returns the caller's role in the collection, or
	// domain.ErrForbidden when the user is not a member.
	GetRole(ctx context.Context, userID, collectionID int64) (domain.MemberRole, error)
	// GetCollectionOwner resolves the owner used to attribute scheduled
	// firings.
	GetCollectionOwner(ctx context.Context, collectionID int64) (int64, error)
	// ListOwnedCollections returns collections owned by the user, for
	// export.
	ListOwnedCollections(ctx context.Context, userID int64) ([]*domain.Collection, error)
	// CreateCollection creates a collection owned by the user, with an
	// OWNER membership row, for import.
	CreateCollection(ctx context.Context, ownerID int64, name string, description *string, isShared bool) (*domain.Collection, error)
}
