package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbdowney09-alt/WorkProof/internal/common"
)

func activeSession(t *testing.T, e *env) *Session {
	t.Helper()
	s := e.newSession()
	require.NoError(t, s.Activate(context.Background(), testUser()))
	return s
}

func TestPositionRegistry_AddAndList(t *testing.T) {
	e := setupEnv(t)
	r := NewPositionRegistry(activeSession(t, e))
	ctx := context.Background()

	p1, err := r.Add(ctx, "Server")
	require.NoError(t, err)
	p2, err := r.Add(ctx, "  Bartender  ")
	require.NoError(t, err)

	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, "Bartender", p2.Name, "names are trimmed")

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Server", list[0].Name, "insertion order preserved")
	assert.Equal(t, "Bartender", list[1].Name)
}

func TestPositionRegistry_AddEmptyName(t *testing.T) {
	e := setupEnv(t)
	r := NewPositionRegistry(activeSession(t, e))

	_, err := r.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrPositionNameRequired)
}

func TestPositionRegistry_AddRequiresSession(t *testing.T) {
	e := setupEnv(t)
	r := NewPositionRegistry(e.newSession())

	_, err := r.Add(context.Background(), "Server")
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestPositionRegistry_Remove(t *testing.T) {
	e := setupEnv(t)
	s := activeSession(t, e)
	r := NewPositionRegistry(s)
	ctx := context.Background()

	p, err := r.Add(ctx, "Server")
	require.NoError(t, err)
	require.NoError(t, r.Remove(ctx, p.ID))
	assert.Empty(t, r.List())

	// Removal survives a reload of the namespace.
	s2 := e.newSession()
	require.NoError(t, s2.Activate(ctx, testUser()))
	assert.Empty(t, s2.Positions())
}

func TestPositionRegistry_RemoveNonexistentIsNoop(t *testing.T) {
	e := setupEnv(t)
	r := NewPositionRegistry(activeSession(t, e))
	ctx := context.Background()

	_, err := r.Add(ctx, "Server")
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, "no-such-id"))
	assert.Len(t, r.List(), 1)
}

func TestPositionRegistry_FailedSaveLeavesMemoryUnchanged(t *testing.T) {
	e := setupEnv(t)
	r := NewPositionRegistry(activeSession(t, e))
	ctx := context.Background()

	_, err := r.Add(ctx, "Server")
	require.NoError(t, err)

	require.NoError(t, e.db.Close())

	_, err = r.Add(ctx, "Bartender")
	require.Error(t, err)
	assert.Len(t, r.List(), 1, "in-memory state must not diverge from storage")
}
