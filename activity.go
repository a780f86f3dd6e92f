package origin

import (
	"context"
	"time"

	"github.com/goliatone/go-daorigin/pkg/activity"
)

// WithActivityHooks attaches hooks notified when a stage origin is pinned or
// a reset clears the cell. Nil entries are dropped. Emission is enabled
// unless WithActivityConfig says otherwise.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := activity.CloneHooks(hooks)
	return func(cfg *resolverConfig) {
		cfg.hooks = normalized
	}
}

// WithActivityConfig sets the emitter configuration.
func WithActivityConfig(config activity.Config) Option {
	return func(cfg *resolverConfig) {
		cfg.activity = config
		cfg.activitySet = true
	}
}

func newEmitter(cfg resolverConfig) *activity.Emitter {
	config := cfg.activity
	if !cfg.activitySet {
		config.Enabled = true
	}
	return activity.NewEmitter(cfg.hooks, config)
}

func pinnedEvent(res Resolution, previous string, at time.Time) *activity.Event {
	event := activity.BuildOriginPinnedEvent(activity.OriginEventInput{
		Origin:     res.Origin,
		Previous:   previous,
		Href:       res.Href,
		SnapshotID: res.SnapshotID,
		OccurredAt: at,
	})
	return &event
}

func resetEvent(res Resolution, previous string, at time.Time) *activity.Event {
	event := activity.BuildOriginResetEvent(activity.OriginEventInput{
		Origin:     res.Origin,
		Previous:   previous,
		Href:       res.Href,
		OccurredAt: at,
	})
	return &event
}

func (r *Resolver) emit(ctx context.Context, event *activity.Event) error {
	if event == nil || !r.emitter.Enabled() {
		return nil
	}
	return r.emitter.Emit(ctx, *event)
}
