package membership_gateway

import (
	"context"

	"suprss/domain"
	"suprss/driver/suprss_db"
)

// MembershipGateway adapts the Postgres repository to the read-only
// membership port this core consumes.
type MembershipGateway struct {
	repo *suprss_db.Repository
}

func NewMembershipGateway(repo *suprss_db.Repository) *MembershipGateway {
	return &MembershipGateway{repo: repo}
}

func (g *MembershipGateway) GetRole(ctx context.Context, userID, collectionID int64) (domain.MemberRole, error) {
	return g.repo.GetRole(ctx, userID, collectionID)
}

func (g *MembershipGateway) GetCollectionOwner(ctx context.Context, collectionID int64) (int64, error) {
	return g.repo.GetCollectionOwner(ctx, collectionID)
}

func (g *MembershipGateway) ListOwnedCollections(ctx context.Context, userID int64) ([]*domain.Collection, error) {
	return g.repo.ListOwnedCollections(ctx, userID)
}

func (g *MembershipGateway) CreateCollection(ctx context.Context, ownerID int64, name string, description *string, isShared bool) (*domain.Collection, error) {
	return g.repo.CreateCollection(ctx, ownerID, name, description, isShared)
}
