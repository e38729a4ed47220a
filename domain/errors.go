package domain

import "errors"

var (
	// resource lookups
	ErrFeedNotFound       = errors.New("feed not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrCollectionNotFound = errors.New("collection not found")

	// authorization
	ErrForbidden = errors.New("not a member of this collection")

	// state gates
	ErrFeedInactive = errors.New("feed is inactive")

	// actor context
	ErrNoUserContext = errors.New("no user in context")
)
