package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriiko/attache/pkg/adapters/fs"
	"github.com/andriiko/attache/pkg/core"
)

func setupStore(t *testing.T) (*fs.Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	return fs.NewStore(fs.Config{Dir: dir}), dir
}

func TestStoreRoundTrip(t *testing.T) {
	store, dir := setupStore(t)
	ctx := context.Background()

	book := core.NewAddressBook()
	john, err := book.Add("John")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("0501234567"))
	require.NoError(t, john.AddEmail("john@example.com"))
	require.NoError(t, john.SetAddress("123 Main St"))
	require.NoError(t, john.SetBirthday("01.01.1990"))

	notebook := core.NewNotebook()
	_, err = notebook.Add("homework", "Do it today", []string{"todo"})
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, book, notebook))

	gotBook, gotNotebook, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, book, gotBook)
	assert.Equal(t, notebook, gotNotebook)

	t.Run("No Temp Files Left", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), fs.TempFilePrefix), "leftover temp file %s", e.Name())
		}
	})
}

func TestStoreLoadAbsent(t *testing.T) {
	store, _ := setupStore(t)

	book, notebook, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, book.Len())
	assert.Zero(t, notebook.Len())
}

func TestStoreLoadCorrupt(t *testing.T) {
	store, dir := setupStore(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, fs.ContactsFile), []byte("not a mapping"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, fs.NotesFile), []byte(":\n  - broken"), 0644))

	book, notebook, err := store.Load(context.Background())
	require.NoError(t, err, "corrupt files must not prevent startup")
	assert.Zero(t, book.Len())
	assert.Zero(t, notebook.Len())
}

func TestStoreSaveOverwrites(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	book := core.NewAddressBook()
	_, err := book.Add("John")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, book, core.NewNotebook()))

	require.NoError(t, book.Remove(book.Contacts[0].ID))
	require.NoError(t, store.Save(ctx, book, core.NewNotebook()))

	gotBook, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, gotBook.Len())
}
