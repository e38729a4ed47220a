package domain

import "context"

// UserContext identifies the actor a request or scheduled firing runs as.
// Scheduled firings carry the owning collection's owner resolved at schedule
// time, so downstream attribution always has an authenticated user.
type UserContext struct {
	UserID int64
	Email  string
}

type userContextKey struct{}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey{}).(*UserContext)
	if !ok || user == nil {
		return nil, ErrNoUserContext
	}
	return user, nil
}
