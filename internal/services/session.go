// Package services contains the application services of the WorkProof core:
// credential handling, the active session and its collections, and the
// position/shift CRUD that delegates persistence to the entity store.
package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/cbdowney09-alt/WorkProof/internal/common"
	"github.com/cbdowney09-alt/WorkProof/internal/logging"
	"github.com/cbdowney09-alt/WorkProof/internal/models"
	"github.com/cbdowney09-alt/WorkProof/internal/storage"
)

// Session owns the per-user mutable state: the active user, the position and
// shift collections, and the mode flag. At most one user is active at a
// time; all collection writers and Clear share the session mutex, so a
// logout always serializes behind a pending save.
//
// The persistence discipline is save-then-assign: in-memory state is only
// updated after the entity store confirms the write, so memory never runs
// ahead of storage.
type Session struct {
	mu    sync.Mutex
	store *storage.EntityStore
	log   logging.Logger

	user      *models.User
	positions []models.Position
	shifts    []models.Shift
	mode      models.Mode
}

func NewSession(store *storage.EntityStore, log logging.Logger) *Session {
	return &Session{store: store, log: log, mode: models.ModeFree}
}

// Restore reads the persisted session marker and, if present, re-activates
// that user's namespace. A missing or unreadable marker means "no session",
// never an error.
func (s *Session) Restore(ctx context.Context) *models.User {
	var u models.User
	if !s.store.Load(ctx, storage.SessionKey, &u) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.loadCollections(ctx, u.ID)
	s.log.Info(ctx, "session restored", "user", u.Email)
	return &u
}

// Activate persists the session marker, makes user the active identity, and
// loads the collections of its namespace.
func (s *Session) Activate(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, storage.SessionKey, user); err != nil {
		return fmt.Errorf("failed to persist session marker: %w", err)
	}
	s.user = user
	s.loadCollections(ctx, user.ID)
	return nil
}

// Clear removes the session marker and resets all in-memory collections to
// their defaults. Clearing with no active session is a no-op.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, storage.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session marker: %w", err)
	}
	s.user = nil
	s.positions = nil
	s.shifts = nil
	s.mode = models.ModeFree
	return nil
}

// loadCollections replaces the in-memory collections with whatever the
// user's namespace holds; absent collections default to empty. Caller must
// hold s.mu.
func (s *Session) loadCollections(ctx context.Context, userID string) {
	s.positions = nil
	s.shifts = nil
	s.mode = models.ModeFree

	var positions []models.Position
	if s.store.Load(ctx, storage.Key{UserID: userID, Collection: storage.CollectionPositions}.String(), &positions) {
		s.positions = positions
	}
	var shifts []models.Shift
	if s.store.Load(ctx, storage.Key{UserID: userID, Collection: storage.CollectionShifts}.String(), &shifts) {
		s.shifts = shifts
	}
	if raw, ok := s.store.LoadString(ctx, storage.Key{UserID: userID, Collection: storage.CollectionMode}.String()); ok {
		s.mode = models.ParseMode(raw)
	}
}

// User returns the active user, or nil when nobody is logged in.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Positions returns a copy of the current position collection.
func (s *Session) Positions() []models.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.positions)
}

// Shifts returns a copy of the current shift collection.
func (s *Session) Shifts() []models.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.shifts)
}

// Mode returns the active user's plan flag.
func (s *Session) Mode() models.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode persists and applies the plan flag.
func (s *Session) SetMode(ctx context.Context, m models.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrNoSession
	}
	key := storage.Key{UserID: s.user.ID, Collection: storage.CollectionMode}.String()
	if err := s.store.SaveString(ctx, key, string(m)); err != nil {
		return err
	}
	s.mode = m
	return nil
}

func (s *Session) appendPosition(ctx context.Context, p models.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrNoSession
	}
	next := append(slices.Clone(s.positions), p)
	key := storage.Key{UserID: s.user.ID, Collection: storage.CollectionPositions}.String()
	if err := s.store.Save(ctx, key, next); err != nil {
		return err
	}
	s.positions = next
	return nil
}

func (s *Session) removePosition(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrNoSession
	}
	next := make([]models.Position, 0, len(s.positions))
	for _, p := range s.positions {
		if p.ID != id {
			next = append(next, p)
		}
	}
	key := storage.Key{UserID: s.user.ID, Collection: storage.CollectionPositions}.String()
	if err := s.store.Save(ctx, key, next); err != nil {
		return err
	}
	s.positions = next
	return nil
}

func (s *Session) appendShift(ctx context.Context, sh models.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrNoSession
	}
	next := append(slices.Clone(s.shifts), sh)
	key := storage.Key{UserID: s.user.ID, Collection: storage.CollectionShifts}.String()
	if err := s.store.Save(ctx, key, next); err != nil {
		return err
	}
	s.shifts = next
	return nil
}

func (s *Session) removeShift(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrNoSession
	}
	next := make([]models.Shift, 0, len(s.shifts))
	for _, sh := range s.shifts {
		if sh.ID != id {
			next = append(next, sh)
		}
	}
	key := storage.Key{UserID: s.user.ID, Collection: storage.CollectionShifts}.String()
	if err := s.store.Save(ctx, key, next); err != nil {
		return err
	}
	s.shifts = next
	return nil
}
