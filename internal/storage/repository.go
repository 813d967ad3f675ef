// Package storage implements the persistence boundary of the WorkProof core:
// a namespaced key-value repository (sqlite by default, postgres optional)
// plus the EntityStore serialization layer on top of it.
package storage

import "context"

// Repository is the capability-scoped key-value boundary. All values are
// stored as text. Get returns (nil, nil) for an absent key; absence is an
// expected state for first-time users, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
