// Package storage persists the signed-in user on the device. The whole store
// is one small JSON document, written atomically so a crash mid-save never
// leaves a torn session behind.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"subletswipe/config"
	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"

	"github.com/pkg/errors"
)

type fileSessionStore struct {
	path   string
	logger *slog.Logger
}

// NewSessionStore creates the file-backed session store from config.
func NewSessionStore(cfg *config.Config, logger *slog.Logger) repository.SessionStore {
	return &fileSessionStore{
		path:   cfg.Session.Path,
		logger: logger,
	}
}

// Save stores the user document, replacing any previous one.
func (s *fileSessionStore) Save(_ context.Context, user *entity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return errors.WithStack(err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "create session temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write session")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close session temp file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace session file")
}

// Load returns the stored user, or ErrNoSession when signed out.
func (s *fileSessionStore) Load(_ context.Context) (*entity.User, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNoSession
		}

		return nil, errors.Wrap(err, "read session file")
	}

	var user entity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		// A corrupt session is treated as signed out rather than a hard
		// failure; the user just logs in again.
		s.logger.Warn("discarding unreadable session file", slog.Any("error", err))

		return nil, repository.ErrNoSession
	}

	return &user, nil
}

// Clear removes the stored user. Clearing an empty store is not an error.
func (s *fileSessionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}
