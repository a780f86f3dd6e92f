package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryCell is the default in-process Cell. Its lifetime is the lifetime of
// the process; nothing is persisted.
type MemoryCell struct {
	mu    sync.RWMutex
	value string
	meta  Meta
	set   bool
	now   func() time.Time
}

// NewMemoryCell returns an empty cell.
func NewMemoryCell() *MemoryCell {
	return &MemoryCell{now: time.Now}
}

func (c *MemoryCell) Load(_ context.Context) (string, Meta, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return "", Meta{}, false, nil
	}
	return c.value, cloneMeta(c.meta), true, nil
}

// Store pins value. A missing SnapshotID or UpdatedAt is filled in.
func (c *MemoryCell) Store(_ context.Context, value string, meta Meta) (Meta, error) {
	if err := ValidateOrigin(value); err != nil {
		return Meta{}, err
	}
	stored := cloneMeta(meta)
	if stored.SnapshotID == "" {
		stored.SnapshotID = uuid.NewString()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = c.clock()
	}

	c.mu.Lock()
	c.value = value
	c.meta = stored
	c.set = true
	c.mu.Unlock()
	return cloneMeta(stored), nil
}

func (c *MemoryCell) Clear(_ context.Context) error {
	c.mu.Lock()
	c.value = ""
	c.meta = Meta{}
	c.set = false
	c.mu.Unlock()
	return nil
}

func (c *MemoryCell) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}
