package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbdowney09-alt/WorkProof/internal/models"
	"github.com/cbdowney09-alt/WorkProof/internal/storage"
)

func testUser() *models.User {
	return &models.User{
		ID:           "u1",
		Email:        "bob@example.com",
		Name:         "Bob",
		PasswordHash: HashPassword("secret1"),
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSession_RestoreWithoutMarker(t *testing.T) {
	e := setupEnv(t)

	assert.Nil(t, e.newSession().Restore(context.Background()))
}

func TestSession_ActivateThenRestore(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()
	user := testUser()

	s1 := e.newSession()
	require.NoError(t, s1.Activate(ctx, user))
	reg := NewPositionRegistry(s1)
	_, err := reg.Add(ctx, "Server")
	require.NoError(t, err)

	// A fresh session (fresh process) restores the user and its namespace.
	s2 := e.newSession()
	restored := s2.Restore(ctx)
	require.NotNil(t, restored)
	assert.Equal(t, user.ID, restored.ID)
	require.Len(t, s2.Positions(), 1)
	assert.Equal(t, "Server", s2.Positions()[0].Name)
	assert.Equal(t, models.ModeFree, s2.Mode())
}

func TestSession_RestoreCorruptMarkerMeansNoSession(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	_, err := e.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, storage.SessionKey, "{broken")
	require.NoError(t, err)

	assert.Nil(t, e.newSession().Restore(ctx), "deserialization failure is no session, not a fatal error")
}

func TestSession_ClearResetsEverything(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	s := e.newSession()
	require.NoError(t, s.Activate(ctx, testUser()))
	_, err := NewPositionRegistry(s).Add(ctx, "Server")
	require.NoError(t, err)
	require.NoError(t, s.SetMode(ctx, models.ModePremium))

	require.NoError(t, s.Clear(ctx))

	assert.Nil(t, s.User())
	assert.Empty(t, s.Positions())
	assert.Empty(t, s.Shifts())
	assert.Equal(t, models.ModeFree, s.Mode())

	// The marker is gone, so a later restore finds nobody...
	assert.Nil(t, e.newSession().Restore(ctx))

	// ...but the user's own data survives for the next login.
	s2 := e.newSession()
	require.NoError(t, s2.Activate(ctx, testUser()))
	assert.Len(t, s2.Positions(), 1)
	assert.Equal(t, models.ModePremium, s2.Mode())
}

func TestSession_ClearIsIdempotent(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	s := e.newSession()
	require.NoError(t, s.Clear(ctx), "clear with no active session is a no-op")
	require.NoError(t, s.Clear(ctx))
}

func TestSession_SetModeRequiresActiveUser(t *testing.T) {
	e := setupEnv(t)

	err := e.newSession().SetMode(context.Background(), models.ModePremium)
	assert.Error(t, err)
}

func TestSession_ModeRoundTrip(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	s := e.newSession()
	require.NoError(t, s.Activate(ctx, testUser()))
	require.NoError(t, s.SetMode(ctx, models.ModePremium))

	s2 := e.newSession()
	require.NoError(t, s2.Activate(ctx, testUser()))
	assert.Equal(t, models.ModePremium, s2.Mode())
}
