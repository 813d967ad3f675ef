package storage

import (
	"fmt"
	"strings"
)

// SessionKey is the single persisted pointer to the active user.
const SessionKey = "current-user"

// Collection names scoped under a user namespace.
const (
	CollectionPositions = "positions"
	CollectionShifts    = "shifts"
	CollectionMode      = "mode"
)

// Key identifies one collection inside one user's namespace. All storage
// keys for user data are resolved through Key.String so the naming scheme
// lives in exactly one place.
type Key struct {
	UserID     string
	Collection string
}

func (k Key) String() string {
	return fmt.Sprintf("user-%s-%s", k.UserID, k.Collection)
}

// UserEmailKey is the account index by lowercased email.
func UserEmailKey(email string) string {
	return "user-email-" + strings.ToLower(email)
}

// UserIDKey is the account index by id. Both indexes point at the same
// serialized User record.
func UserIDKey(id string) string {
	return "user-id-" + id
}
