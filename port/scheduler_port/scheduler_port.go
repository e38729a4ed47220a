package scheduler_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=scheduler_port.go -destination=../../mocks/mock_scheduler_port.go -package=mocks

// Scheduler is the capability the feed CRUD surface depends on. The concrete
// scheduler and the refresh path only meet in the DI container, never by
// mutual construction.
type Scheduler interface {
	// ScheduleFeed derives a recurring trigger from the feed's current
	// update frequency, replacing any prior trigger. A vanished feed is a
	// no-op.
	ScheduleFeed(ctx context.Context, feedID int64) error
	// UnscheduleFeed removes the feed's trigger; no-op if none exists.
	UnscheduleFeed(ctx context.Context, feedID int64) error
	// ScheduleAllFeeds rebuilds triggers for every stored feed and
	// returns how many were scheduled.
	ScheduleAllFeeds(ctx context.Context) (int, error)
}
