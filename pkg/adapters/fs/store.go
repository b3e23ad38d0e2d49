// Package fs persists the address book and notebook as YAML snapshot files
// in a data directory.
package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andriiko/attache/pkg/core"
)

const (
	// ContactsFile holds the serialized address book.
	ContactsFile = "contacts.yaml"
	// NotesFile holds the serialized notebook.
	NotesFile = "notes.yaml"
)

// Store implements core.Store on top of two YAML files.
type Store struct {
	Dir    string
	logger *slog.Logger

	mu        sync.Mutex
	lastWrite time.Time
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Dir    string
	Logger *slog.Logger
}

// NewStore creates a filesystem-backed store rooted at config.Dir.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{Dir: config.Dir, logger: logger}
}

// Initialize ensures the data directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Load reads both collections from disk. A missing or corrupt file yields an
// empty collection with a logged warning, so a fresh or damaged installation
// still starts.
func (s *Store) Load(ctx context.Context) (*core.AddressBook, *core.Notebook, error) {
	book := core.NewAddressBook()
	if err := s.loadFile(ContactsFile, book); err != nil {
		s.logger.Warn("starting with an empty address book", "file", ContactsFile, "error", err)
		book = core.NewAddressBook()
	}

	notebook := core.NewNotebook()
	if err := s.loadFile(NotesFile, notebook); err != nil {
		s.logger.Warn("starting with an empty notebook", "file", NotesFile, "error", err)
		notebook = core.NewNotebook()
	}

	return book, notebook, nil
}

func (s *Store) loadFile(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}

// Save writes both collections atomically. The directory is created on
// first save if Initialize was never called.
func (s *Store) Save(ctx context.Context, book *core.AddressBook, notebook *core.Notebook) error {
	if err := s.Initialize(ctx); err != nil {
		return err
	}

	if err := s.saveFile(ContactsFile, book); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	if err := s.saveFile(NotesFile, notebook); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}

	s.mu.Lock()
	s.lastWrite = time.Now()
	s.mu.Unlock()

	s.logger.Debug("dataset saved", "dir", s.Dir, "contacts", book.Len(), "notes", notebook.Len())
	return nil
}

func (s *Store) saveFile(name string, source any) error {
	data, err := yaml.Marshal(source)
	if err != nil {
		return err
	}
	return writeSnapshot(filepath.Join(s.Dir, name), data)
}

// ownWrite reports whether an fsnotify event at time t is likely an echo of
// this process's own Save.
func (s *Store) ownWrite(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastWrite) < 500*time.Millisecond
}
