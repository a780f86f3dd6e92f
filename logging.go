package origin

import "time"

// ResolutionLogEvent describes a single resolution for logging.
type ResolutionLogEvent struct {
	Origin    string
	Source    Source
	Directive Directive
	Href      string
	Duration  time.Duration
	Err       error
}

// ResolutionLogger records resolution events.
type ResolutionLogger interface {
	LogResolution(ResolutionLogEvent)
}

// ResolutionLoggerFunc adapts a function to ResolutionLogger.
type ResolutionLoggerFunc func(ResolutionLogEvent)

// LogResolution implements ResolutionLogger.
func (f ResolutionLoggerFunc) LogResolution(event ResolutionLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopResolutionLogger struct{}

func (noopResolutionLogger) LogResolution(ResolutionLogEvent) {}

// WithLogger attaches a resolution logger. Err on the logged event carries
// cell or hook failures that the resolver absorbed.
func WithLogger(logger ResolutionLogger) Option {
	return func(cfg *resolverConfig) {
		if logger == nil {
			cfg.logger = noopResolutionLogger{}
			return
		}
		cfg.logger = logger
	}
}
