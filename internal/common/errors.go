// Package common defines shared constants and sentinel errors used across
// WorkProof components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors. Surfaced verbatim to the user; no state changes.
	ErrFieldsRequired        = errors.New("all fields are required")
	ErrEmailPasswordRequired = errors.New("email and password are required")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrPasswordTooShort      = errors.New("password must be at least 6 characters")
	ErrPositionNameRequired  = errors.New("position name is required")
	ErrShiftFieldsRequired   = errors.New("start time, end time and position are required")

	// Registration conflict (duplicate lowercased email).
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// Auth error. One generic message whether the email or the password
	// was wrong, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Mutations attempted with no active user.
	ErrNoSession = errors.New("no active session")
)
