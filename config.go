package origin

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-daorigin/layering"
	"github.com/goliatone/go-daorigin/pkg/activity"
	"github.com/goliatone/go-daorigin/pkg/state"
)

const (
	// DefaultAdminOrigin is returned when no stage selection is pinned.
	DefaultAdminOrigin = "https://admin.da.live"
	// StageAdminOrigin is returned, and pinned, for da-admin=stage.
	StageAdminOrigin = "https://stage-admin.da.live"
	// DefaultParam is the query parameter carrying the override directive.
	DefaultParam = "da-admin"
)

// Config holds the origins and parameter name a Resolver works with.
type Config struct {
	AdminOrigin  string `json:"admin_origin"`
	StageOrigin  string `json:"stage_origin"`
	CollabOrigin string `json:"collab_origin"`
	Param        string `json:"param"`
}

// DefaultConfig returns the production origins.
func DefaultConfig() Config {
	return Config{
		AdminOrigin:  DefaultAdminOrigin,
		StageOrigin:  StageAdminOrigin,
		CollabOrigin: CollabOrigin,
		Param:        DefaultParam,
	}
}

// Validate checks every origin is an absolute scheme://host value and the
// parameter name is usable.
func (c Config) Validate() error {
	var errs []error
	if err := validateOrigin(c.AdminOrigin, "https", "http"); err != nil {
		errs = append(errs, &ConfigError{Field: "admin_origin", Value: c.AdminOrigin, Err: err})
	}
	if err := validateOrigin(c.StageOrigin, "https", "http"); err != nil {
		errs = append(errs, &ConfigError{Field: "stage_origin", Value: c.StageOrigin, Err: err})
	}
	if err := validateOrigin(c.CollabOrigin, "wss", "ws"); err != nil {
		errs = append(errs, &ConfigError{Field: "collab_origin", Value: c.CollabOrigin, Err: err})
	}
	if c.AdminOrigin != "" && trimOrigin(c.AdminOrigin) == trimOrigin(c.StageOrigin) {
		errs = append(errs, &ConfigError{Field: "stage_origin", Value: c.StageOrigin, Err: errSameOrigin})
	}
	if strings.TrimSpace(c.Param) == "" || strings.ContainsAny(c.Param, " \t\r\n&=?#") {
		errs = append(errs, &ConfigError{Field: "param", Value: c.Param, Err: errInvalidParam})
	}
	return errors.Join(errs...)
}

var (
	errMissingOrigin = errors.New("origin is required")
	errNotAbsolute   = errors.New("origin must be scheme://host")
	errScheme        = errors.New("unsupported scheme")
	errInvalidParam  = errors.New("parameter name must be a non-empty query key")
	errSameOrigin    = errors.New("stage origin must differ from admin origin")
)

// normalized strips trailing slashes so origins compare and render the same
// way as the defaults.
func (c Config) normalized() Config {
	c.AdminOrigin = trimOrigin(c.AdminOrigin)
	c.StageOrigin = trimOrigin(c.StageOrigin)
	c.CollabOrigin = trimOrigin(c.CollabOrigin)
	return c
}

func trimOrigin(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

func validateOrigin(value string, schemes ...string) error {
	if strings.TrimSpace(value) == "" {
		return errMissingOrigin
	}
	u, err := url.Parse(value)
	if err != nil {
		return err
	}
	if u.Host == "" || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return errNotAbsolute
	}
	for _, scheme := range schemes {
		if u.Scheme == scheme {
			return nil
		}
	}
	return errScheme
}

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	overrides   Config
	cell        state.Cell
	logger      ResolutionLogger
	hooks       activity.Hooks
	activity    activity.Config
	activitySet bool
	now         func() time.Time
}

func applyOptions(opts []Option) resolverConfig {
	cfg := resolverConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithConfig layers every non-empty field of c over the defaults.
func WithConfig(c Config) Option {
	return func(cfg *resolverConfig) {
		cfg.overrides = layering.MergeLayers(c, cfg.overrides)
	}
}

// WithAdminOrigin overrides the default admin origin.
func WithAdminOrigin(origin string) Option {
	return WithConfig(Config{AdminOrigin: origin})
}

// WithStageOrigin overrides the stage admin origin.
func WithStageOrigin(origin string) Option {
	return WithConfig(Config{StageOrigin: origin})
}

// WithCollabOrigin overrides the collaboration origin reported by the resolver.
func WithCollabOrigin(origin string) Option {
	return WithConfig(Config{CollabOrigin: origin})
}

// WithParam overrides the query parameter name.
func WithParam(name string) Option {
	return WithConfig(Config{Param: name})
}

// WithCell injects the cache cell. Passing nil keeps the in-memory default.
func WithCell(cell state.Cell) Option {
	return func(cfg *resolverConfig) {
		cfg.cell = cell
	}
}

// WithClock overrides the time source used for pin timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(cfg *resolverConfig) {
		cfg.now = now
	}
}
