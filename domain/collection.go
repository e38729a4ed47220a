package domain

import "time"

// MemberRole orders collection privileges: readers may only consume, members
// may edit feeds, the owner additionally manages membership.
type MemberRole string

const (
	RoleOwner  MemberRole = "OWNER"
	RoleMember MemberRole = "MEMBER"
	RoleReader MemberRole = "READER"
)

// CanEdit reports whether the role is allowed to mutate feeds.
func (r MemberRole) CanEdit() bool {
	return r == RoleOwner || r == RoleMember
}

type Collection struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsShared    bool      `json:"isShared"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Membership struct {
	UserID       int64      `json:"userId"`
	CollectionID int64      `json:"collectionId"`
	Role         MemberRole `json:"role"`
}
