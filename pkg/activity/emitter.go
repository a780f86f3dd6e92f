package activity

import (
	"context"
	"strings"
)

// DefaultChannel is applied to events emitted without an explicit channel.
const DefaultChannel = "origin"

// Config controls whether the resolver emits events and on which channel.
type Config struct {
	Enabled bool
	Channel string
}

// Emitter stamps the configured channel on events and hands them to hooks.
type Emitter struct {
	hooks   Hooks
	channel string
}

// NewEmitter returns an emitter, or nil when cfg disables emission or no
// usable hooks remain. A nil *Emitter is valid and drops every event.
func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	hooks = CloneHooks(hooks)
	if !cfg.Enabled || !hooks.Enabled() {
		return nil
	}
	channel := strings.TrimSpace(cfg.Channel)
	if channel == "" {
		channel = DefaultChannel
	}
	return &Emitter{hooks: hooks, channel: channel}
}

// Enabled reports whether emissions should be attempted.
func (e *Emitter) Enabled() bool {
	return e != nil && e.hooks.Enabled()
}

// Emit forwards event to the hooks, filling in the channel when missing.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	if strings.TrimSpace(event.Channel) == "" {
		event.Channel = e.channel
	}
	return e.hooks.Notify(ctx, event)
}
