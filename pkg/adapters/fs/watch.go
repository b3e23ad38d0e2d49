package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reports external modification of the data files. Events caused by
// this process's own saves and by the atomic-write temp files are filtered
// out; bursts are debounced into a single event.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}

	events := make(chan struct{}, 1)
	go s.watchLoop(ctx, watcher, events)
	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- struct{}) {
	defer watcher.Close()
	defer close(events)

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !s.relevant(ev) {
				continue
			}
			s.logger.Debug("data file changed on disk", "file", ev.Name, "op", ev.Op.String())
			pending = true
			debounce.Reset(50 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", "error", err)
		case <-debounce.C:
			if pending && !s.ownWrite(time.Now()) {
				select {
				case events <- struct{}{}:
				default: // an event is already queued
				}
			}
			pending = false
		}
	}
}

func (s *Store) relevant(ev fsnotify.Event) bool {
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return false
	}
	return base == ContactsFile || base == NotesFile
}
