// Package usersink forwards origin activity events to a go-users ActivitySink.
package usersink

import (
	"context"

	"github.com/goliatone/go-daorigin/pkg/activity"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// Hook adapts activity events to a go-users ActivitySink.
type Hook struct {
	Sink usertypes.ActivitySink
}

// Notify records the event on the sink. Incomplete events are skipped.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil {
		return nil
	}
	normalized := activity.NormalizeEvent(event)
	if !normalized.Complete() {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return h.Sink.Log(ctx, Record(normalized))
}

// Record maps a normalized event onto a go-users activity record. Identifiers
// that are not UUIDs map to uuid.Nil.
func Record(event activity.Event) usertypes.ActivityRecord {
	return usertypes.ActivityRecord{
		ActorID:    parseUUID(event.ActorID),
		UserID:     parseUUID(event.UserID),
		TenantID:   parseUUID(event.TenantID),
		Verb:       event.Verb,
		ObjectType: event.ObjectType,
		ObjectID:   event.ObjectID,
		Channel:    event.Channel,
		Data:       event.Metadata,
		OccurredAt: event.OccurredAt,
	}
}

func parseUUID(input string) uuid.UUID {
	id, err := uuid.Parse(input)
	if err != nil {
		return uuid.Nil
	}
	return id
}
