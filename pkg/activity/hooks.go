// Package activity fans out origin lifecycle events (pin, reset) to
// caller-supplied hooks.
package activity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Event describes a change to the resolver's cache cell.
// IDs are stringly-typed to avoid coupling call sites to specific UUID types.
type Event struct {
	Verb       string
	ActorID    string
	UserID     string
	TenantID   string
	ObjectType string
	ObjectID   string
	Channel    string
	Metadata   map[string]any
	OccurredAt time.Time
}

// Complete reports whether the event carries the fields every hook needs.
func (e Event) Complete() bool {
	return e.Verb != "" && e.ObjectType != "" && e.ObjectID != ""
}

// ActivityHook receives normalized activity events.
type ActivityHook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc allows plain functions to satisfy ActivityHook.
type HookFunc func(ctx context.Context, event Event) error

// Notify dispatches to the underlying function.
func (fn HookFunc) Notify(ctx context.Context, event Event) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// Hooks fans out events to zero or more hooks.
type Hooks []ActivityHook

// Enabled reports whether there are any hooks to notify.
func (h Hooks) Enabled() bool {
	return len(h) > 0
}

// Notify normalizes the event and forwards it to every hook, returning the
// joined hook errors. Incomplete events are dropped.
func (h Hooks) Notify(ctx context.Context, event Event) error {
	if !h.Enabled() {
		return nil
	}
	normalized := NormalizeEvent(event)
	if !normalized.Complete() {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, normalized); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NormalizeEvent trims identifiers, detaches metadata and stamps a timestamp.
// Origin events (verbs under "origin.") default their object type to the
// admin origin cell and their object id to the snapshot id, then the origin,
// found in metadata.
func NormalizeEvent(event Event) Event {
	out := Event{
		Verb:       strings.TrimSpace(event.Verb),
		ActorID:    strings.TrimSpace(event.ActorID),
		UserID:     strings.TrimSpace(event.UserID),
		TenantID:   strings.TrimSpace(event.TenantID),
		ObjectType: strings.TrimSpace(event.ObjectType),
		ObjectID:   strings.TrimSpace(event.ObjectID),
		Channel:    strings.TrimSpace(event.Channel),
		Metadata:   cloneMap(event.Metadata),
		OccurredAt: event.OccurredAt,
	}
	if out.OccurredAt.IsZero() {
		out.OccurredAt = time.Now()
	}
	if !strings.HasPrefix(out.Verb, "origin.") {
		return out
	}
	if out.ObjectType == "" {
		out.ObjectType = ObjectTypeAdminOrigin
	}
	if out.ObjectID == "" {
		out.ObjectID = firstMetadata(out.Metadata, "snapshot_id", "origin")
	}
	if out.ObjectID == "" {
		out.ObjectID = out.ObjectType
	}
	return out
}

// CloneHooks returns a copy of hooks with nil entries dropped, or nil when
// nothing remains.
func CloneHooks(hooks Hooks) Hooks {
	var out Hooks
	for _, hook := range hooks {
		if hook != nil {
			out = append(out, hook)
		}
	}
	return out
}

func firstMetadata(meta map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := meta[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
