package assistant

import (
	"log/slog"
	"time"

	"github.com/andriiko/attache/pkg/core"
)

// options holds the internal configuration for the assistant service.
type options struct {
	dataDir string
	store   core.Store
	logger  *slog.Logger
	clock   func() time.Time
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		clock: time.Now,
	}
}

// WithDataDir sets the directory for the default filesystem store.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithStore allows injecting a custom store (e.g. mock, in-memory).
// If provided, the default filesystem store will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source. Useful for birthday-window tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}
