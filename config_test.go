package origin

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestConfigValidateRejectsBadFields(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*Config)
		field string
	}{
		{name: "missing admin", mut: func(c *Config) { c.AdminOrigin = "" }, field: "admin_origin"},
		{name: "admin with path", mut: func(c *Config) { c.AdminOrigin = "https://admin.da.live/api" }, field: "admin_origin"},
		{name: "admin with query", mut: func(c *Config) { c.AdminOrigin = "https://admin.da.live?x=1" }, field: "admin_origin"},
		{name: "admin websocket scheme", mut: func(c *Config) { c.AdminOrigin = "wss://admin.da.live" }, field: "admin_origin"},
		{name: "stage relative", mut: func(c *Config) { c.StageOrigin = "stage-admin.da.live" }, field: "stage_origin"},
		{name: "collab https scheme", mut: func(c *Config) { c.CollabOrigin = "https://collab.da.live" }, field: "collab_origin"},
		{name: "param blank", mut: func(c *Config) { c.Param = " " }, field: "param"},
		{name: "param with separator", mut: func(c *Config) { c.Param = "da&admin" }, field: "param"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
				t.Fatalf("expected ConfigError for %s, got %v", tc.field, err)
			}
		})
	}
}

func TestConfigValidateAcceptsTrailingSlashAndHTTP(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdminOrigin = "http://localhost:8787/"
	cfg.CollabOrigin = "ws://localhost:4711"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected local origins to validate, got %v", err)
	}
}

func TestConfigValidateRejectsSameAdminAndStage(t *testing.T) {
	cases := []struct {
		name  string
		admin string
		stage string
	}{
		{name: "identical", admin: "https://admin.da.live", stage: "https://admin.da.live"},
		{name: "trailing slash only", admin: "https://admin.da.live", stage: "https://admin.da.live/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AdminOrigin = tc.admin
			cfg.StageOrigin = tc.stage
			err := cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != "stage_origin" || !errors.Is(err, errSameOrigin) {
				t.Fatalf("expected stage_origin ConfigError, got %v", err)
			}
		})
	}
	if _, err := NewResolver(WithStageOrigin(DefaultAdminOrigin)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected NewResolver to reject collapsed environments, got %v", err)
	}
}

func TestNewResolverTrimsTrailingSlashes(t *testing.T) {
	r, err := NewResolver(
		WithAdminOrigin("http://localhost:8787/"),
		WithStageOrigin("http://localhost:8788/"),
		WithCollabOrigin("ws://localhost:4711/"),
	)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	if got := r.ResolveAdminOrigin(nil); got != "http://localhost:8787" {
		t.Fatalf("expected trimmed admin origin, got %q", got)
	}
	if got := r.ResolveAdminOrigin(Href("http://localhost:3000/?da-admin=stage")); got != "http://localhost:8788" {
		t.Fatalf("expected trimmed stage origin, got %q", got)
	}
	if got := r.CollabOrigin(); got != "ws://localhost:4711" {
		t.Fatalf("expected trimmed collab origin, got %q", got)
	}
}

func TestNewResolverLayersOptionsOverDefaults(t *testing.T) {
	r, err := NewResolver(
		WithConfig(Config{AdminOrigin: "https://admin.one.live", Param: "one"}),
		WithParam("two"),
		WithAdminOrigin(""),
	)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	cfg := r.Config()
	if cfg.AdminOrigin != "https://admin.one.live" {
		t.Fatalf("expected empty override to keep earlier value, got %q", cfg.AdminOrigin)
	}
	if cfg.Param != "two" {
		t.Fatalf("expected later option to win, got %q", cfg.Param)
	}
	if cfg.StageOrigin != StageAdminOrigin || cfg.CollabOrigin != CollabOrigin {
		t.Fatalf("expected defaults for unset fields, got %+v", cfg)
	}
}

func TestNewResolverRejectsInvalidConfig(t *testing.T) {
	_, err := NewResolver(WithStageOrigin("ftp://stage.da.live"), WithCollabOrigin("https://collab.da.live"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestMustResolverPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustResolver(WithAdminOrigin("not an origin"))
}

func TestWithCellNilKeepsMemoryCell(t *testing.T) {
	r, err := NewResolver(WithCell(nil))
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	if r.cell == nil {
		t.Fatalf("expected memory cell installed")
	}
}
