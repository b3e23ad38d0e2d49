package assistant_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriiko/attache/pkg/assistant"
)

func TestServiceLifecycle(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, err := assistant.New(ctx, assistant.WithDataDir(dir))
	require.NoError(t, err)
	assert.Zero(t, svc.Book().Len())
	assert.Zero(t, svc.Notebook().Len())

	john, err := svc.Book().Add("John")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("0501234567"))
	_, err = svc.Notebook().Add("homework", "Do it today", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Commit(ctx))

	// A fresh service over the same directory sees the committed data.
	reopened, err := assistant.New(ctx, assistant.WithDataDir(dir))
	require.NoError(t, err)
	require.Equal(t, 1, reopened.Book().Len())
	assert.Equal(t, "John", reopened.Book().Contacts[0].Name)
	assert.Equal(t, []string{"0501234567"}, reopened.Book().Contacts[0].Phones)
	require.Equal(t, 1, reopened.Notebook().Len())
}

func TestServiceRequiresStoreOrDir(t *testing.T) {
	_, err := assistant.New(context.Background())
	require.Error(t, err)
}

func TestServiceClock(t *testing.T) {
	fixed := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	svc, err := assistant.New(context.Background(),
		assistant.WithDataDir(t.TempDir()),
		assistant.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)
	assert.Equal(t, fixed, svc.Now())
}

func TestServiceReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writer, err := assistant.New(ctx, assistant.WithDataDir(dir))
	require.NoError(t, err)
	reader, err := assistant.New(ctx, assistant.WithDataDir(dir))
	require.NoError(t, err)

	_, err = writer.Book().Add("Alice")
	require.NoError(t, err)
	require.NoError(t, writer.Commit(ctx))

	assert.Zero(t, reader.Book().Len())
	require.NoError(t, reader.Reload(ctx))
	assert.Equal(t, 1, reader.Book().Len())
}
