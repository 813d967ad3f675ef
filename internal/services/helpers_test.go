package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cbdowney09-alt/WorkProof/internal/logging"
	"github.com/cbdowney09-alt/WorkProof/internal/storage"

	_ "modernc.org/sqlite"
)

type env struct {
	db      *sql.DB
	manager storage.Manager
	store   *storage.EntityStore
	log     logging.Logger
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)

	m, err := storage.NewManager(storage.DriverSQLite)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &env{
		db:      db,
		manager: m,
		store:   storage.NewEntityStore(db, m, log),
		log:     log,
	}
}

func (e *env) newAuth() *AuthService {
	return NewAuthService(e.db, e.manager, e.log)
}

func (e *env) newSession() *Session {
	return NewSession(e.store, e.log)
}

func (e *env) countKeys(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	return n
}
