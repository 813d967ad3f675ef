package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cbdowney09-alt/WorkProof/internal/common"
	"github.com/cbdowney09-alt/WorkProof/internal/models"
)

// PositionRegistry is thin CRUD over the session's position collection.
// Insertion order is preserved in storage; display ordering is left to the
// presentation layer.
type PositionRegistry struct {
	session *Session
}

func NewPositionRegistry(s *Session) *PositionRegistry {
	return &PositionRegistry{session: s}
}

// Add appends a new position and persists the resulting collection.
func (r *PositionRegistry) Add(ctx context.Context, name string) (*models.Position, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrPositionNameRequired
	}

	p := models.Position{ID: uuid.NewString(), Name: name}
	if err := r.session.appendPosition(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Remove filters the id out of the collection and persists the result.
// Removing a nonexistent id is a no-op. Shifts referencing the removed
// position keep their positionId and degrade gracefully in derived views.
func (r *PositionRegistry) Remove(ctx context.Context, id string) error {
	return r.session.removePosition(ctx, id)
}

// List returns the current positions in insertion order.
func (r *PositionRegistry) List() []models.Position {
	return r.session.Positions()
}
