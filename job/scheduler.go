// Package job owns the recurring refresh machinery: one in-process trigger
// per scheduled feed, a durable registry mirror so registrations survive
// restarts, and the worker loop that fires each trigger into the ingestion
// pipeline.
package job

import (
	"context"
	"errors"
	"sync"
	"time"

	"suprss/config"
	"suprss/domain"
	"suprss/port/feed_port"
	"suprss/port/membership_port"
	"suprss/port/refresher_port"
	"suprss/port/trigger_registry_port"
	"suprss/utils/logger"
)

type trigger struct {
	feedID  int64
	actorID int64
	freq    domain.UpdateFrequency
	cancel  context.CancelFunc
}

// RefreshScheduler keeps at most one live trigger per feed. Scheduling the
// same feed again replaces the old trigger atomically; there is never a
// window with two timers for one feed.
type RefreshScheduler struct {
	feedGateway       feed_port.FeedPort
	membershipGateway membership_port.MembershipPort
	refresher         refresher_port.Refresher
	registry          trigger_registry_port.TriggerRegistry
	cfg               config.SchedulerConfig
	now               func() time.Time

	mu       sync.Mutex
	baseCtx  context.Context
	triggers map[int64]*trigger
	wg       sync.WaitGroup
}

func NewRefreshScheduler(
	feedGateway feed_port.FeedPort,
	membershipGateway membership_port.MembershipPort,
	refresher refresher_port.Refresher,
	registry trigger_registry_port.TriggerRegistry,
	cfg config.SchedulerConfig,
) *RefreshScheduler {
	return &RefreshScheduler{
		feedGateway:       feedGateway,
		membershipGateway: membershipGateway,
		refresher:         refresher,
		registry:          registry,
		cfg:               cfg,
		now:               time.Now,
		baseCtx:           context.Background(),
		triggers:          map[int64]*trigger{},
	}
}

// Start binds trigger goroutines to ctx. Cancelling ctx stops every trigger;
// Shutdown then waits for the in-flight runs to drain.
func (s *RefreshScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
}

// ScheduleFeed derives a trigger from the feed's current update frequency
// and replaces any prior one. The actor recorded on the registration is the
// collection owner at schedule time. A vanished feed is a no-op.
func (s *RefreshScheduler) ScheduleFeed(ctx context.Context, feedID int64) error {
	feed, err := s.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		if errors.Is(err, domain.ErrFeedNotFound) {
			logger.SafeWarn("schedule skipped, feed vanished", "feed_id", feedID)
			return nil
		}
		return err
	}

	actorID, err := s.membershipGateway.GetCollectionOwner(ctx, feed.CollectionID)
	if err != nil {
		return err
	}

	reg := trigger_registry_port.Registration{
		FeedID:  feedID,
		ActorID: actorID,
		Pattern: PatternForFrequency(feed.UpdateFreq, s.cfg.DailyFireHour),
	}
	if err := s.registry.Save(ctx, reg); err != nil {
		return err
	}

	s.startTrigger(feedID, actorID, feed.UpdateFreq)

	logger.SafeInfo("feed scheduled",
		"feed_id", feedID, "pattern", reg.Pattern, "actor_id", actorID)
	return nil
}

// UnscheduleFeed removes the feed's trigger and its registration; unknown
// feeds are a no-op.
func (s *RefreshScheduler) UnscheduleFeed(ctx context.Context, feedID int64) error {
	if err := s.registry.Remove(ctx, feedID); err != nil {
		return err
	}

	s.mu.Lock()
	if t, ok := s.triggers[feedID]; ok {
		t.cancel()
		delete(s.triggers, feedID)
	}
	s.mu.Unlock()

	logger.SafeInfo("feed unscheduled", "feed_id", feedID)
	return nil
}

// ScheduleAllFeeds rebuilds a trigger for every stored feed. One feed's
// failure does not stop the rebuild; it is logged and the rest proceed.
func (s *RefreshScheduler) ScheduleAllFeeds(ctx context.Context) (int, error) {
	feedIDs, err := s.feedGateway.ListAllFeedIDs(ctx)
	if err != nil {
		return 0, err
	}

	scheduled := 0
	for _, feedID := range feedIDs {
		if err := s.ScheduleFeed(ctx, feedID); err != nil {
			logger.SafeError("scheduling feed failed", "feed_id", feedID, "error", err)
			continue
		}
		scheduled++
	}

	logger.SafeInfo("trigger rebuild complete", "feeds", len(feedIDs), "scheduled", scheduled)
	return scheduled, nil
}

// RestoreTriggers rebuilds in-process timers from the durable registry, so
// feeds a user unscheduled stay unscheduled across restarts. An empty
// registry means a first boot; then every stored feed is scheduled fresh.
func (s *RefreshScheduler) RestoreTriggers(ctx context.Context) (int, error) {
	regs, err := s.registry.List(ctx)
	if err != nil {
		return 0, err
	}

	if len(regs) == 0 {
		return s.ScheduleAllFeeds(ctx)
	}

	for _, reg := range regs {
		s.startTrigger(reg.FeedID, reg.ActorID, FrequencyForPattern(reg.Pattern))
	}

	logger.SafeInfo("triggers restored from registry", "count", len(regs))
	return len(regs), nil
}

// Shutdown blocks until every trigger goroutine has returned. Callers cancel
// the Start context first.
func (s *RefreshScheduler) Shutdown() {
	s.wg.Wait()
}

func (s *RefreshScheduler) startTrigger(feedID, actorID int64, freq domain.UpdateFrequency) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.triggers[feedID]; ok {
		prev.cancel()
	}

	ctx, cancel := context.WithCancel(s.baseCtx)
	t := &trigger{feedID: feedID, actorID: actorID, freq: freq, cancel: cancel}
	s.triggers[feedID] = t

	s.wg.Add(1)
	go s.runTrigger(ctx, t)
}

func (s *RefreshScheduler) runTrigger(ctx context.Context, t *trigger) {
	defer s.wg.Done()

	for {
		next := NextFire(t.freq, s.cfg.DailyFireHour, s.now())
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.fire(ctx, t)
		}
	}
}

// fire runs one scheduled ingestion. Failures never kill the trigger: the
// run is logged, counted and the loop re-arms for the next instant.
func (s *RefreshScheduler) fire(ctx context.Context, t *trigger) {
	if ctx.Err() != nil {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()

	start := s.now()
	result, err := s.refresher.Ingest(runCtx, t.feedID)

	switch {
	case err == nil:
		refreshRuns.WithLabelValues(outcomeOK).Inc()
		articlesCreated.Add(float64(result.Created))
		logger.SafeInfo("scheduled refresh complete",
			"feed_id", t.feedID, "actor_id", t.actorID,
			"processed", result.Processed, "created", result.Created,
			"duration", s.now().Sub(start))

	case errors.Is(err, domain.ErrFeedInactive):
		refreshRuns.WithLabelValues(outcomeInactive).Inc()
		logger.SafeInfo("scheduled refresh skipped, feed inactive", "feed_id", t.feedID)

	case errors.Is(err, domain.ErrFeedNotFound):
		// The row is gone but the trigger survived, likely a stale
		// registration. Retire it.
		refreshRuns.WithLabelValues(outcomeMissing).Inc()
		logger.SafeWarn("scheduled refresh hit missing feed, retiring trigger", "feed_id", t.feedID)
		if rmErr := s.UnscheduleFeed(ctx, t.feedID); rmErr != nil {
			logger.SafeError("retiring stale trigger failed", "feed_id", t.feedID, "error", rmErr)
		}

	default:
		refreshRuns.WithLabelValues(outcomeError).Inc()
		logger.SafeError("scheduled refresh failed", "feed_id", t.feedID, "error", err)
	}
}
