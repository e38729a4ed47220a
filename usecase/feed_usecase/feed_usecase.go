// Package feed_usecase is the feed CRUD surface. Every mutation is gated on
// collection membership with edit rights, and every lifecycle change keeps
// the recurring-trigger registry consistent: create schedules, a frequency
// change re-schedules, delete unschedules before cascading.
package feed_usecase

import (
	"context"

	"suprss/domain"
	"suprss/port/feed_port"
	"suprss/port/membership_port"
	"suprss/port/scheduler_port"
	"suprss/utils/logger"
)

// CreateFeedInput is the creation payload; Status defaults to ACTIVE.
type CreateFeedInput struct {
	CollectionID int64
	Title        string
	URL          string
	Description  *string
	Category     *string
	UpdateFreq   domain.UpdateFrequency
	Status       domain.FeedStatus
}

type FeedUsecase struct {
	feedGateway       feed_port.FeedPort
	membershipGateway membership_port.MembershipPort
	scheduler         scheduler_port.Scheduler
}

func NewFeedUsecase(
	feedGateway feed_port.FeedPort,
	membershipGateway membership_port.MembershipPort,
	scheduler scheduler_port.Scheduler,
) *FeedUsecase {
	return &FeedUsecase{
		feedGateway:       feedGateway,
		membershipGateway: membershipGateway,
		scheduler:         scheduler,
	}
}

func (u *FeedUsecase) requireEditRole(ctx context.Context, userID, collectionID int64) error {
	role, err := u.membershipGateway.GetRole(ctx, userID, collectionID)
	if err != nil {
		return err
	}
	if !role.CanEdit() {
		return domain.ErrForbidden
	}
	return nil
}

// CreateFeed creates the feed and always registers its recurring trigger.
func (u *FeedUsecase) CreateFeed(ctx context.Context, userID int64, input CreateFeedInput) (*domain.Feed, error) {
	if err := u.requireEditRole(ctx, userID, input.CollectionID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.FeedStatusActive
	}

	created, err := u.feedGateway.CreateFeed(ctx, &domain.Feed{
		CollectionID: input.CollectionID,
		Title:        input.Title,
		URL:          input.URL,
		Description:  input.Description,
		Category:     input.Category,
		UpdateFreq:   input.UpdateFreq,
		Status:       status,
	})
	if err != nil {
		return nil, err
	}

	if err := u.scheduler.ScheduleFeed(ctx, created.ID); err != nil {
		return nil, err
	}

	return created, nil
}

// ListFeeds returns a collection's feeds; reading is open to every member.
func (u *FeedUsecase) ListFeeds(ctx context.Context, userID, collectionID int64) ([]*domain.Feed, error) {
	if _, err := u.membershipGateway.GetRole(ctx, userID, collectionID); err != nil {
		return nil, err
	}
	return u.feedGateway.ListFeedsByCollection(ctx, collectionID)
}

// UpdateFeed applies the patch. When the patch touches the update frequency
// the trigger is re-derived even if the feed is INACTIVE; the ingestion
// pipeline is the gate that keeps an inactive feed from refreshing.
func (u *FeedUsecase) UpdateFeed(ctx context.Context, userID, feedID int64, patch domain.FeedPatch) (*domain.Feed, error) {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}

	if err := u.requireEditRole(ctx, userID, feed.CollectionID); err != nil {
		return nil, err
	}

	updated, err := u.feedGateway.UpdateFeed(ctx, feedID, patch)
	if err != nil {
		return nil, err
	}

	if patch.UpdateFreq != nil {
		if err := u.scheduler.ScheduleFeed(ctx, feedID); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// ScheduleFeed re-derives the feed's trigger on demand.
func (u *FeedUsecase) ScheduleFeed(ctx context.Context, userID, feedID int64) error {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return err
	}
	if err := u.requireEditRole(ctx, userID, feed.CollectionID); err != nil {
		return err
	}
	return u.scheduler.ScheduleFeed(ctx, feedID)
}

// UnscheduleFeed drops the feed's trigger without touching the feed itself.
func (u *FeedUsecase) UnscheduleFeed(ctx context.Context, userID, feedID int64) error {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return err
	}
	if err := u.requireEditRole(ctx, userID, feed.CollectionID); err != nil {
		return err
	}
	return u.scheduler.UnscheduleFeed(ctx, feedID)
}

// RescheduleAll rebuilds every feed's trigger and returns how many were
// scheduled.
func (u *FeedUsecase) RescheduleAll(ctx context.Context) (int, error) {
	return u.scheduler.ScheduleAllFeeds(ctx)
}

// RemoveFeed unschedules first so no firing races the cascade, then deletes
// the feed with its articles and statuses.
func (u *FeedUsecase) RemoveFeed(ctx context.Context, userID, feedID int64) error {
	feed, err := u.feedGateway.GetFeedByID(ctx, feedID)
	if err != nil {
		return err
	}

	if err := u.requireEditRole(ctx, userID, feed.CollectionID); err != nil {
		return err
	}

	if err := u.scheduler.UnscheduleFeed(ctx, feedID); err != nil {
		// The feed row still goes away; a stale registration fires into
		// a missing feed, which the scheduler tolerates as a no-op.
		logger.SafeWarn("unschedule before delete failed", "feed_id", feedID, "error", err)
	}

	return u.feedGateway.DeleteFeedCascade(ctx, feedID)
}
