package core

import "context"

// Store defines the contract for persisting the whole dataset. Adhering to
// this interface keeps the domain independent of the storage mechanism.
// Collections are loaded and saved wholesale; there are no incremental or
// transactional guarantees.
type Store interface {
	// Load reads both collections. Absent or unreadable data yields empty
	// collections, never an error the caller must branch on to get going.
	Load(ctx context.Context) (*AddressBook, *Notebook, error)

	// Save persists both collections, replacing whatever was stored before.
	Save(ctx context.Context, book *AddressBook, notebook *Notebook) error
}

// Watchable is implemented by stores that can report external modification
// of the underlying data between Save calls.
type Watchable interface {
	// Watch emits an event each time the stored data changes outside this
	// process. The channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
