package state

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidOrigin indicates an attempt to store an empty or blank origin.
var ErrInvalidOrigin = errors.New("state: origin must not be empty")

// Meta is cell-owned metadata describing the current pin.
type Meta struct {
	SnapshotID string            `json:"snapshot_id,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Cell holds at most one pinned origin.
type Cell interface {
	Load(ctx context.Context) (value string, meta Meta, ok bool, err error)
	Store(ctx context.Context, value string, meta Meta) (Meta, error)
	Clear(ctx context.Context) error
}

// ValidateOrigin reports ErrInvalidOrigin for blank values.
func ValidateOrigin(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrInvalidOrigin
	}
	return nil
}

func cloneMeta(meta Meta) Meta {
	out := meta
	if meta.Extra == nil {
		return out
	}
	out.Extra = make(map[string]string, len(meta.Extra))
	for k, v := range meta.Extra {
		out.Extra[k] = v
	}
	return out
}
