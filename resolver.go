// Package origin resolves which admin service origin a client should talk to.
//
// A da-admin=stage query parameter selects the stage origin and pins it for
// the rest of the process; da-admin=reset forgets the pin. Anything else
// yields the default origin without touching the pin. Resolution never fails.
package origin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-daorigin/layering"
	"github.com/goliatone/go-daorigin/pkg/activity"
	"github.com/goliatone/go-daorigin/pkg/state"
)

// Resolver owns a cache cell that is either empty or pinned to the stage
// origin. The zero value is ready to use with the default configuration.
type Resolver struct {
	mu      sync.Mutex
	cfg     Config
	cell    state.Cell
	logger  ResolutionLogger
	emitter *activity.Emitter
	now     func() time.Time
}

// NewResolver layers the supplied options over DefaultConfig and validates
// the result.
func NewResolver(opts ...Option) (*Resolver, error) {
	rc := applyOptions(opts)
	cfg := layering.MergeLayers(rc.overrides, DefaultConfig()).normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Resolver{
		cfg:     cfg,
		cell:    rc.cell,
		logger:  rc.logger,
		emitter: newEmitter(rc),
		now:     rc.now,
	}
	if r.cell == nil {
		r.cell = state.NewMemoryCell()
	}
	return r, nil
}

// MustResolver is NewResolver that panics on invalid configuration.
func MustResolver(opts ...Option) *Resolver {
	r, err := NewResolver(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Config returns the effective configuration.
func (r *Resolver) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return r.cfg
}

// ResolveAdminOrigin returns the admin origin for loc. A pinned stage origin
// is returned as-is unless loc carries a reset directive. loc may be nil.
func (r *Resolver) ResolveAdminOrigin(loc Location) string {
	return r.ResolveWithTrace(context.Background(), loc).Origin
}

// ResolveContext is ResolveAdminOrigin with ctx forwarded to activity hooks.
func (r *Resolver) ResolveContext(ctx context.Context, loc Location) string {
	return r.ResolveWithTrace(ctx, loc).Origin
}

// ResolveWithTrace resolves loc and reports how the origin was chosen.
func (r *Resolver) ResolveWithTrace(ctx context.Context, loc Location) Resolution {
	if ctx == nil {
		ctx = context.Background()
	}

	href := hrefOf(loc)

	r.mu.Lock()
	r.ensure()
	start := r.clock()
	directive := ParseDirective(href, r.cfg.Param)

	var errs []error
	cached, meta, pinned, err := r.cell.Load(ctx)
	if err != nil {
		errs = append(errs, wrapCellError("load", err))
		pinned = false
	}
	if pinned && !r.recognised(cached) {
		errs = append(errs, fmt.Errorf("%w: %q", errUnrecognisedPin, cached))
		pinned = false
	}

	res := Resolution{Directive: directive, Href: href}
	var event *activity.Event

	switch {
	case pinned && directive != DirectiveReset:
		res.Origin = cached
		res.Source = SourceCache
		res.SnapshotID = meta.SnapshotID
		res.Pinned = true
	case directive == DirectiveStage:
		res.Origin = r.cfg.StageOrigin
		res.Source = SourceOverride
		saved, err := r.cell.Store(ctx, res.Origin, state.Meta{UpdatedAt: start, Extra: hrefExtra(href)})
		if err != nil {
			errs = append(errs, wrapCellError("store", err))
		} else {
			res.SnapshotID = saved.SnapshotID
			res.Pinned = true
			event = pinnedEvent(res, "", start)
		}
	case directive == DirectiveReset:
		res.Origin = r.cfg.AdminOrigin
		res.Source = SourceReset
		if err := r.cell.Clear(ctx); err != nil {
			errs = append(errs, wrapCellError("clear", err))
		}
		previous := ""
		if pinned {
			previous = cached
		}
		event = resetEvent(res, previous, start)
	default:
		res.Origin = r.cfg.AdminOrigin
		res.Source = SourceDefault
	}

	logger := r.resolutionLogger()
	r.mu.Unlock()

	if err := r.emit(ctx, event); err != nil {
		errs = append(errs, err)
	}

	logger.LogResolution(ResolutionLogEvent{
		Origin:    res.Origin,
		Source:    res.Source,
		Directive: res.Directive,
		Href:      res.Href,
		Duration:  r.clock().Sub(start),
		Err:       errors.Join(errs...),
	})
	return res
}

// Pinned returns the pinned origin, if any, without resolving.
func (r *Resolver) Pinned() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	value, _, ok, err := r.cell.Load(context.Background())
	if err != nil || !ok || !r.recognised(value) {
		return "", false
	}
	return value, true
}

// ensure fills in defaults for a zero-value Resolver. Callers hold r.mu.
func (r *Resolver) ensure() {
	if r.cfg.AdminOrigin == "" || r.cfg.StageOrigin == "" || r.cfg.CollabOrigin == "" || r.cfg.Param == "" {
		r.cfg = layering.MergeLayers(r.cfg, DefaultConfig())
	}
	if r.cell == nil {
		r.cell = state.NewMemoryCell()
	}
}

// recognised reports whether value is a valid pin. Only the stage origin is
// ever pinned; anything else found in the cell is foreign.
func (r *Resolver) recognised(value string) bool {
	return value != "" && value == r.cfg.StageOrigin
}

func (r *Resolver) resolutionLogger() ResolutionLogger {
	if r.logger != nil {
		return r.logger
	}
	return noopResolutionLogger{}
}

func (r *Resolver) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func hrefExtra(href string) map[string]string {
	if href == "" {
		return nil
	}
	return map[string]string{"href": href}
}
