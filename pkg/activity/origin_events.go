package activity

import (
	"strings"
	"time"
)

const (
	// VerbOriginPinned is emitted when a stage selection is stored in the cell.
	VerbOriginPinned = "origin.pinned"
	// VerbOriginReset is emitted when a reset directive clears the cell.
	VerbOriginReset = "origin.reset"

	// ObjectTypeAdminOrigin identifies the admin origin cache cell.
	ObjectTypeAdminOrigin = "origin.admin"
)

// OriginEventInput describes the common fields for origin lifecycle events.
type OriginEventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	Channel    string
	Origin     string
	Previous   string
	Href       string
	SnapshotID string
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildOriginPinnedEvent constructs an event for a stage pin.
func BuildOriginPinnedEvent(input OriginEventInput) Event {
	return buildOriginEvent(VerbOriginPinned, input)
}

// BuildOriginResetEvent constructs an event for a reset of the cell.
func BuildOriginResetEvent(input OriginEventInput) Event {
	return buildOriginEvent(VerbOriginReset, input)
}

func buildOriginEvent(verb string, input OriginEventInput) Event {
	metadata := cloneMap(input.Metadata)
	set := func(key, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		if metadata == nil {
			metadata = map[string]any{}
		}
		metadata[key] = value
	}
	set("origin", input.Origin)
	set("previous_origin", input.Previous)
	set("href", input.Href)
	set("snapshot_id", input.SnapshotID)

	return NormalizeEvent(Event{
		Verb:       verb,
		ActorID:    input.ActorID,
		UserID:     input.UserID,
		TenantID:   input.TenantID,
		Channel:    input.Channel,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	})
}
