package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/cbdowney09-alt/WorkProof/internal/logging"
)

// EntityStore is the serialization layer over the kv Repository. Values are
// JSON-encoded text; round-trip fidelity is the only external contract.
//
// Read-side failures (missing key, corrupt value, backend error) all report
// absence: first-time users legitimately have nothing stored, and a derived
// read must never take the process down. Write failures propagate so callers
// can keep in-memory state aligned with what was actually persisted.
type EntityStore struct {
	db      *sql.DB
	manager Manager
	log     logging.Logger
}

func NewEntityStore(db *sql.DB, m Manager, log logging.Logger) *EntityStore {
	return &EntityStore{db: db, manager: m, log: log}
}

// Load reads the value at key into v. It returns false when the key is
// absent or unreadable; v is left untouched in that case.
func (s *EntityStore) Load(ctx context.Context, key string, v any) bool {
	b, err := s.manager.KV(s.db).Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "storage read failed, treating as absent", "key", key, "error", err)
		return false
	}
	if b == nil {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.log.Warn(ctx, "stored value is corrupt, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

// Save replaces the value at key with the JSON encoding of v.
func (s *EntityStore) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.manager.KV(s.db).Set(ctx, key, b)
}

// LoadString reads a plain-string value (the mode flag is stored unencoded).
func (s *EntityStore) LoadString(ctx context.Context, key string) (string, bool) {
	b, err := s.manager.KV(s.db).Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "storage read failed, treating as absent", "key", key, "error", err)
		return "", false
	}
	if b == nil {
		return "", false
	}
	return string(b), true
}

// SaveString replaces the value at key with a plain string.
func (s *EntityStore) SaveString(ctx context.Context, key string, value string) error {
	return s.manager.KV(s.db).Set(ctx, key, []byte(value))
}

// Delete removes the value at key. Deleting an absent key is a no-op.
func (s *EntityStore) Delete(ctx context.Context, key string) error {
	return s.manager.KV(s.db).Delete(ctx, key)
}
