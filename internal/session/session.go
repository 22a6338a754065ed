// Package session keeps the single authenticated user of the portal and
// persists it under a well-known key so it survives restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/session/storage"
)

// Key is where the session record lives in the storage.
const Key = "authUser"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Store holds at most one user. It is either logged out or holds a
// complete AuthUser; nothing in between.
type Store struct {
	mu      sync.RWMutex
	user    *models.AuthUser
	storage Storage
	log     *slog.Logger
}

// Open loads the persisted session. A corrupt record is dropped and the
// store starts logged out.
func Open(ctx context.Context, log *slog.Logger, st Storage) (*Store, error) {
	const op = "session.Open"

	log = log.With(slog.String("op", op))

	s := &Store{storage: st, log: log}

	raw, err := st.Get(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug("no persisted session")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user models.AuthUser
	if err := json.Unmarshal(raw, &user); err != nil || !user.Valid() {
		if err == nil {
			err = errors.New("incomplete session record")
		}
		log.Warn("failed to parse persisted session, discarding it", sl.Err(err))

		if rmErr := st.Remove(ctx, Key); rmErr != nil {
			log.Error("failed to clear corrupt session", sl.Err(rmErr))
		}

		return s, nil
	}

	s.user = &user

	log.Info("session restored", slog.Int64("user_id", user.ID))

	return s, nil
}

func (s *Store) Current() (models.AuthUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.AuthUser{}, false
	}

	return *s.user, true
}

func (s *Store) Login(ctx context.Context, user models.AuthUser) error {
	const op = "session.Store.Login"

	if !user.Valid() {
		return fmt.Errorf("%s: incomplete user", op)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.user = &user

	return nil
}

// Logout clears the in-memory copy even when the persisted one cannot be
// removed.
func (s *Store) Logout(ctx context.Context) error {
	const op = "session.Store.Logout"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	if err := s.storage.Remove(ctx, Key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.storage.Close()
}
