package trigger_registry_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=trigger_registry_port.go -destination=../../mocks/mock_trigger_registry_port.go -package=mocks

// Registration is one durable recurring-trigger record, keyed by the
// trigger name "feed:<feedId>".
type Registration struct {
	FeedID  int64  `json:"feedId"`
	ActorID int64  `json:"actorId"`
	Pattern string `json:"pattern"`
}

// TriggerRegistry persists trigger registrations independently of process
// lifetime. Save replaces any prior registration for the same feed.
type TriggerRegistry interface {
	Save(ctx context.Context, reg Registration) error
	Remove(ctx context.Context, feedID int64) error
	List(ctx context.Context) ([]Registration, error)
}
