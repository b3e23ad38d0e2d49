// Package attache is the composition root for the attache application.
//
// It connects the domain collections (address book, notebook) with the
// filesystem store, exposing the assistant service under a single import:
//
//	svc, err := attache.New(ctx,
//		attache.WithDataDir("~/.attache"),
//		attache.WithLogger(logger),
//	)
//
// The interactive command loop lives in cmd/attache; this package is the
// embeddable library surface.
package attache

import (
	"context"
	"log/slog"
	"time"

	"github.com/andriiko/attache/pkg/assistant"
	"github.com/andriiko/attache/pkg/core"
)

// --- Types ---

// Service is the assistant service holding the loaded dataset.
type Service = assistant.Service

// Config is the environment-driven configuration.
type Config = assistant.Config

// Contact is a person record.
type Contact = core.Contact

// Note is a titled text entry with optional tags.
type Note = core.Note

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = assistant.Option

// WithDataDir sets the directory for the default filesystem store.
func WithDataDir(dir string) Option {
	return assistant.WithDataDir(dir)
}

// WithStore allows injecting a custom store adapter.
func WithStore(store core.Store) Option {
	return assistant.WithStore(store)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return assistant.WithLogger(logger)
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return assistant.WithClock(clock)
}

// --- Entry points ---

// New builds a Service and loads the dataset from its store.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	return assistant.New(ctx, opts...)
}

// LoadConfig reads configuration from ATTACHE_-prefixed environment variables.
func LoadConfig() (Config, error) {
	return assistant.LoadConfig()
}
