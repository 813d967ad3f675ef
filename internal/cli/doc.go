// Package cli implements the interactive terminal client of WorkProof: a
// prompt-driven loop over the auth, session, position and shift services.
package cli
