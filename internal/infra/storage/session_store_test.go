package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"subletswipe/config"
	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) repository.SessionStore {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.Path = filepath.Join(t.TempDir(), "session.json")

	return NewSessionStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "kai@example.com", FirstName: "Kai", LastName: "Ito"}
	require.NoError(t, store.Save(ctx, user))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestSessionStore_LoadWithoutSession(t *testing.T) {
	store := newTestStore(t)

	user, err := store.Load(context.Background())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrNoSession)
}

func TestSessionStore_ClearRemovesSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.User{ID: 1}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession)

	// Clearing twice stays a no-op.
	require.NoError(t, store.Clear(ctx))
}

func TestSessionStore_CorruptFileTreatedAsSignedOut(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Path = filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(cfg.Session.Path, []byte("{not json"), 0o600))

	store := NewSessionStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoSession)
}
