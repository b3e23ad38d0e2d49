// Package assistant wires the domain collections to a persistent store.
//
// It is the composition root for the application: construct a Service with
// functional options, mutate the collections through it, and call Commit
// after each successful mutation to snapshot the dataset to disk.
package assistant

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/andriiko/attache/pkg/adapters/fs"
	"github.com/andriiko/attache/pkg/core"
)

// Service holds the loaded collections and the store backing them.
type Service struct {
	book     *core.AddressBook
	notebook *core.Notebook
	store    core.Store
	logger   *slog.Logger
	clock    func() time.Time
}

// New builds a Service and loads the dataset from the store.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store := o.store
	if store == nil {
		if o.dataDir == "" {
			return nil, fmt.Errorf("either a data directory or a store is required")
		}
		store = fs.NewStore(fs.Config{Dir: o.dataDir, Logger: logger})
	}

	s := &Service{store: store, logger: logger, clock: o.clock}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Book returns the loaded address book.
func (s *Service) Book() *core.AddressBook {
	return s.book
}

// Notebook returns the loaded notebook.
func (s *Service) Notebook() *core.Notebook {
	return s.notebook
}

// Now returns the current time per the configured clock.
func (s *Service) Now() time.Time {
	return s.clock()
}

// Commit snapshots both collections to the store. In-memory state is kept
// even when the save fails, so the user can retry.
func (s *Service) Commit(ctx context.Context) error {
	if err := s.store.Save(ctx, s.book, s.notebook); err != nil {
		return fmt.Errorf("failed to persist changes: %w", err)
	}
	return nil
}

// Reload replaces the in-memory collections with the stored state.
func (s *Service) Reload(ctx context.Context) error {
	book, notebook, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	s.book = book
	s.notebook = notebook
	s.logger.Debug("dataset loaded", "contacts", book.Len(), "notes", notebook.Len())
	return nil
}

// Watch observes external changes to the stored data if the store supports
// it. Callers typically Reload when an event arrives.
func (s *Service) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, ok := s.store.(core.Watchable)
	if !ok {
		return nil, fmt.Errorf("store does not support watching")
	}
	return w.Watch(ctx)
}
