// Package state defines the storage contract for the resolver's cache cell:
// a single slot that is either empty or holds one pinned origin.
//
// The root origin package owns the cell and is the only caller expected to
// read or write it. Consumers may inject their own Cell implementation, but
// must preserve the invariant that a stored value is never empty.
//
// Data flow:
//
//	Resolver -> Cell.Load -> (short-circuit | Cell.Store | Cell.Clear)
//
// Provenance:
//
//	Meta.SnapshotID identifies a single pin. It is surfaced to callers through
//	origin.Resolution.SnapshotID and attached to activity events.
package state
