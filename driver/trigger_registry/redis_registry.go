// Package trigger_registry persists recurring-trigger registrations in
// Redis so they outlive the process that created them. Firing itself is
// in-process; this registry is the durable record the scheduler mirrors.
package trigger_registry

import (
	"context"
	"encoding/json"
	"fmt"

	"suprss/port/trigger_registry_port"
	"suprss/utils/logger"

	"github.com/redis/go-redis/v9"
)

const triggersKey = "suprss:feed-refresh:triggers"

type RedisTriggerRegistry struct {
	client *redis.Client
}

func NewRedisTriggerRegistry(redisURL string) (*RedisTriggerRegistry, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisTriggerRegistry{client: redis.NewClient(opts)}, nil
}

func triggerName(feedID int64) string {
	return fmt.Sprintf("feed:%d", feedID)
}

// Save replaces any existing registration for the feed; HSET on a fixed
// field is the atomic remove-then-add.
func (r *RedisTriggerRegistry) Save(ctx context.Context, reg trigger_registry_port.Registration) error {
	payload, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("marshal trigger registration: %w", err)
	}

	if err := r.client.HSet(ctx, triggersKey, triggerName(reg.FeedID), payload).Err(); err != nil {
		return fmt.Errorf("save trigger %s: %w", triggerName(reg.FeedID), err)
	}

	return nil
}

func (r *RedisTriggerRegistry) Remove(ctx context.Context, feedID int64) error {
	if err := r.client.HDel(ctx, triggersKey, triggerName(feedID)).Err(); err != nil {
		return fmt.Errorf("remove trigger %s: %w", triggerName(feedID), err)
	}
	return nil
}

func (r *RedisTriggerRegistry) List(ctx context.Context) ([]trigger_registry_port.Registration, error) {
	entries, err := r.client.HGetAll(ctx, triggersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list triggers: %w", err)
	}

	regs := make([]trigger_registry_port.Registration, 0, len(entries))
	for name, payload := range entries {
		var reg trigger_registry_port.Registration
		if err := json.Unmarshal([]byte(payload), &reg); err != nil {
			logger.SafeWarn("skipping corrupt trigger registration", "trigger", name, "error", err)
			continue
		}
		regs = append(regs, reg)
	}

	return regs, nil
}

func (r *RedisTriggerRegistry) Close() error {
	return r.client.Close()
}
